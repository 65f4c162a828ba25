package dto

import (
	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/pure_utils"
)

// FieldDto is the field descriptor contract consumed by the query builder
// widgets. Validators are server-side only and never serialized.
type FieldDto struct {
	Name        string        `json:"name"`
	Label       string        `json:"label"`
	DataType    string        `json:"dataType"`
	Operators   []OperatorDto `json:"operators"`
	Placeholder string        `json:"placeholder,omitempty"`
}

type OperatorDto struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

func AdaptFieldDto(field models.FieldDescriptor) FieldDto {
	return FieldDto{
		Name:     field.Name,
		Label:    field.Label,
		DataType: string(field.DataType),
		Operators: pure_utils.Map(field.Operators, func(op models.Operator) OperatorDto {
			return OperatorDto{Name: op.Name, Label: op.Label}
		}),
		Placeholder: field.Placeholder,
	}
}

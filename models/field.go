package models

// FieldDataType is the semantic type of a filterable column, as exposed to
// the query builder UI. Every native postgres type maps to exactly one of
// these.
type FieldDataType string

const (
	FieldTypeText     FieldDataType = "text"
	FieldTypeNumber   FieldDataType = "number"
	FieldTypeBoolean  FieldDataType = "boolean"
	FieldTypeDate     FieldDataType = "date"
	FieldTypeDatetime FieldDataType = "datetime"
	FieldTypeTime     FieldDataType = "time"
)

type Operator struct {
	Name  string
	Label string
}

// FieldValidator accepts or rejects a candidate rule value for a field,
// before any type coercion happens.
type FieldValidator func(value any) bool

// FieldDescriptor describes one filterable column of a table: its semantic
// type, the operators the UI may offer on it, and an optional value
// validator. Descriptors are built fresh per request from schema
// introspection and are read-only for their consumers.
type FieldDescriptor struct {
	Name        string
	Label       string
	DataType    FieldDataType
	Operators   []Operator
	Placeholder string
	Validator   FieldValidator
}

func (f FieldDescriptor) AllowsOperator(name string) bool {
	for _, op := range f.Operators {
		if op.Name == name {
			return true
		}
	}
	return false
}

// FieldDescriptors indexes a field set by name for rule validation and
// compilation.
type FieldDescriptors []FieldDescriptor

func (fields FieldDescriptors) Get(name string) (FieldDescriptor, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// Operator names follow the react-querybuilder spelling, since rule trees
// authored by the UI are stored and compiled verbatim.
const (
	OperatorEqual          = "="
	OperatorNotEqual       = "!="
	OperatorLess           = "<"
	OperatorLessOrEqual    = "<="
	OperatorGreater        = ">"
	OperatorGreaterOrEqual = ">="
	OperatorContains       = "contains"
	OperatorBeginsWith     = "beginsWith"
	OperatorEndsWith       = "endsWith"
	OperatorNotContains    = "doesNotContain"
	OperatorNotBeginsWith  = "doesNotBeginWith"
	OperatorNotEndsWith    = "doesNotEndWith"
	OperatorIn             = "in"
	OperatorNotIn          = "notIn"
	OperatorIsNull         = "null"
	OperatorIsNotNull      = "notNull"
)

// IsNullOperator reports whether the operator tests for null and therefore
// ignores the rule value entirely.
func IsNullOperator(name string) bool {
	return name == OperatorIsNull || name == OperatorIsNotNull
}

var nullOperators = []Operator{
	{Name: OperatorIsNull, Label: "is null"},
	{Name: OperatorIsNotNull, Label: "is not null"},
}

// OperatorsForDataType returns the ordered operator set offered on a field
// of the given type, before any per-table override narrows it.
func OperatorsForDataType(dataType FieldDataType) []Operator {
	switch dataType {
	case FieldTypeText:
		return append([]Operator{
			{Name: OperatorEqual, Label: "is"},
			{Name: OperatorNotEqual, Label: "is not"},
			{Name: OperatorContains, Label: "contains"},
			{Name: OperatorBeginsWith, Label: "begins with"},
			{Name: OperatorEndsWith, Label: "ends with"},
			{Name: OperatorNotContains, Label: "does not contain"},
			{Name: OperatorNotBeginsWith, Label: "does not begin with"},
			{Name: OperatorNotEndsWith, Label: "does not end with"},
			{Name: OperatorIn, Label: "in"},
			{Name: OperatorNotIn, Label: "not in"},
		}, nullOperators...)
	case FieldTypeNumber:
		return append([]Operator{
			{Name: OperatorEqual, Label: "="},
			{Name: OperatorNotEqual, Label: "!="},
			{Name: OperatorLess, Label: "less than"},
			{Name: OperatorLessOrEqual, Label: "less than or equal to"},
			{Name: OperatorGreater, Label: "greater than"},
			{Name: OperatorGreaterOrEqual, Label: "greater than or equal to"},
		}, nullOperators...)
	case FieldTypeDate, FieldTypeDatetime, FieldTypeTime:
		return append([]Operator{
			{Name: OperatorEqual, Label: "on"},
			{Name: OperatorNotEqual, Label: "not on"},
			{Name: OperatorLess, Label: "before"},
			{Name: OperatorLessOrEqual, Label: "on or before"},
			{Name: OperatorGreater, Label: "after"},
			{Name: OperatorGreaterOrEqual, Label: "on or after"},
		}, nullOperators...)
	case FieldTypeBoolean:
		return append([]Operator{
			{Name: OperatorEqual, Label: "is"},
			{Name: OperatorNotEqual, Label: "is not"},
		}, nullOperators...)
	}
	return OperatorsForDataType(FieldTypeText)
}

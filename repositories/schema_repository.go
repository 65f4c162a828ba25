package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/repositories/dbmodels"
)

// ResolveTableFields introspects the live column catalog of a table's
// relation and maps every column to a field descriptor. The identity column
// is not filterable and is excluded. A relation with no columns does not
// exist as far as the caller is concerned.
func (repo *TablescopeDbRepository) ResolveTableFields(
	ctx context.Context,
	exec Executor,
	table models.Table,
) (models.FieldDescriptors, error) {
	query := NewQueryBuilder().
		Select("column_name", "data_type").
		From("information_schema.columns").
		Where(squirrel.Eq{"table_name": table.Relation}).
		Where(squirrel.NotEq{"column_name": "id"}).
		OrderBy("ordinal_position")

	columns, err := SqlToListOfModels(ctx, exec, query,
		func(db dbmodels.DBColumn) (models.FieldDescriptor, error) {
			dataType := DataTypeFromColumnType(db.DataType)
			return models.FieldDescriptor{
				Name:      db.ColumnName,
				Label:     db.ColumnName,
				DataType:  dataType,
				Operators: models.OperatorsForDataType(dataType),
			}, nil
		})
	if err != nil {
		return nil, err
	}

	// An empty field list is indistinguishable from a missing relation, and
	// every explorable table has filterable columns.
	if len(columns) == 0 {
		return nil, errors.Wrapf(models.NotFoundError, "table %q", table.Name)
	}
	return columns, nil
}

// DataTypeFromColumnType maps a native postgres type name to its semantic
// data type. The mapping is total: anything unrecognized is treated as text
// rather than failing.
func DataTypeFromColumnType(columnType string) models.FieldDataType {
	switch {
	case strings.Contains(columnType, "char"), columnType == "text":
		return models.FieldTypeText
	case columnType == "integer", columnType == "bigint", columnType == "smallint",
		columnType == "decimal", columnType == "numeric",
		columnType == "real", columnType == "double precision":
		return models.FieldTypeNumber
	case columnType == "date":
		return models.FieldTypeDate
	case strings.HasPrefix(columnType, "timestamp"):
		return models.FieldTypeDatetime
	case strings.HasPrefix(columnType, "time"):
		return models.FieldTypeTime
	case columnType == "boolean":
		return models.FieldTypeBoolean
	}
	return models.FieldTypeText
}

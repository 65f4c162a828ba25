package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescope/tablescope-backend/models"
)

func TestDataTypeFromColumnType(t *testing.T) {
	cases := map[string]models.FieldDataType{
		"character varying":           models.FieldTypeText,
		"character":                   models.FieldTypeText,
		"text":                        models.FieldTypeText,
		"integer":                     models.FieldTypeNumber,
		"bigint":                      models.FieldTypeNumber,
		"smallint":                    models.FieldTypeNumber,
		"decimal":                     models.FieldTypeNumber,
		"numeric":                     models.FieldTypeNumber,
		"real":                        models.FieldTypeNumber,
		"double precision":            models.FieldTypeNumber,
		"date":                        models.FieldTypeDate,
		"timestamp without time zone": models.FieldTypeDatetime,
		"timestamp with time zone":    models.FieldTypeDatetime,
		"time without time zone":      models.FieldTypeTime,
		"boolean":                     models.FieldTypeBoolean,
		// anything unrecognized degrades to text
		"uuid":  models.FieldTypeText,
		"jsonb": models.FieldTypeText,
	}

	for columnType, expected := range cases {
		assert.Equal(t, expected, DataTypeFromColumnType(columnType), columnType)
	}
}

func TestResolveTableFields(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	table, err := models.TableFromName("users")
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT column_name, data_type FROM information_schema.columns "+
			"WHERE table_name = $1 AND column_name <> $2 ORDER BY ordinal_position")).
		WithArgs("users", "id").
		WillReturnRows(pgxmock.NewRows([]string{"column_name", "data_type"}).
			AddRow("name", "text").
			AddRow("age", "integer").
			AddRow("is_admin", "boolean").
			AddRow("created_at", "timestamp without time zone"))

	repo := NewTablescopeDbRepository()
	fields, err := repo.ResolveTableFields(context.Background(), mock, table)
	require.NoError(t, err)
	require.Len(t, fields, 4)

	assert.Equal(t, "name", fields[0].Name)
	assert.Equal(t, models.FieldTypeText, fields[0].DataType)
	assert.Equal(t, models.FieldTypeNumber, fields[1].DataType)
	assert.Equal(t, models.FieldTypeBoolean, fields[2].DataType)
	assert.Equal(t, models.FieldTypeDatetime, fields[3].DataType)
	assert.True(t, fields[0].AllowsOperator(models.OperatorContains))
	assert.False(t, fields[1].AllowsOperator(models.OperatorContains))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveTableFieldsUnknownRelation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	table := models.Table{Name: "ghosts", Relation: "ghosts"}

	mock.ExpectQuery("SELECT column_name, data_type FROM information_schema.columns").
		WithArgs("ghosts", "id").
		WillReturnRows(pgxmock.NewRows([]string{"column_name", "data_type"}))

	repo := NewTablescopeDbRepository()
	_, err = repo.ResolveTableFields(context.Background(), mock, table)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.NotFoundError)
}

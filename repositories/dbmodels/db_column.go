package dbmodels

// DBColumn is one row of information_schema.columns, restricted to what the
// field resolver needs.
type DBColumn struct {
	ColumnName string `db:"column_name"`
	DataType   string `db:"data_type"`
}

package utils

import "reflect"

// ColumnList returns the `db` tag of every field of Model, in declaration
// order. Embedded structs are flattened, untagged fields skipped. Used by
// dbmodels to keep SELECT column lists in sync with the row structs.
func ColumnList[Model any]() []string {
	var model Model
	return columnsOf(reflect.TypeOf(model))
}

func columnsOf(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(field.Type)...)
			continue
		}
		tag, ok := field.Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		columns = append(columns, tag)
	}
	return columns
}

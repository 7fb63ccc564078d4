package utils

import "reflect"

// ColumnList derives the column names of a db model struct from its `db` tags,
// in declaration order. Embedded structs are flattened.
func ColumnList[T any]() []string {
	var model T
	return columnsOfType(reflect.TypeOf(model))
}

func columnsOfType(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOfType(field.Type)...)
			continue
		}
		if tag, ok := field.Tag.Lookup("db"); ok && tag != "-" {
			columns = append(columns, tag)
		}
	}
	return columns
}

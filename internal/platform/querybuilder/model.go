package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

type modelLayout struct {
	columns []string
	fields  []int
}

// layouts caches the db-tagged field layout per struct type.
var layouts sync.Map

func InsertModel(table string, model any, suffix string) (string, []any, error) {
	return InsertModels(table, []any{model}, suffix)
}

// InsertModels renders one multi-row insert from db-tagged structs. Every
// model must have the struct type of the first one.
func InsertModels[T any](table string, models []T, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	builder := InsertInto(table).Suffix(suffix)
	var first reflect.Type
	for i := range models {
		value, err := structValue(models[i])
		if err != nil {
			return "", nil, fmt.Errorf("model %d: %w", i, err)
		}
		layout, err := layoutOf(value.Type())
		if err != nil {
			return "", nil, err
		}

		if i == 0 {
			first = value.Type()
			builder.Columns(layout.columns...)
		} else if value.Type() != first {
			return "", nil, fmt.Errorf("model %d: type %s differs from %s", i, value.Type(), first)
		}

		vals := make([]any, len(layout.fields))
		for j, field := range layout.fields {
			vals[j] = value.Field(field).Interface()
		}
		builder.Values(vals...)
	}
	return builder.ToSQL()
}

func structValue(model any) (reflect.Value, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return reflect.Value{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("model must be struct, got %s", value.Kind())
	}
	return value, nil
}

func layoutOf(typ reflect.Type) (modelLayout, error) {
	if cached, ok := layouts.Load(typ); ok {
		return cached.(modelLayout), nil
	}

	var layout modelLayout
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		layout.columns = append(layout.columns, col)
		layout.fields = append(layout.fields, i)
	}
	if len(layout.columns) == 0 {
		return modelLayout{}, fmt.Errorf("model %s has no db columns", typ)
	}

	layouts.Store(typ, layout)
	return layout, nil
}

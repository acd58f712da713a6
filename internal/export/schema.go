package export

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// ErrNoData is returned when an export is requested over a nil or empty
// collection. The check runs before any file-format library is touched.
var ErrNoData = errors.New("No data to export.")

// ErrUnsupportedType is returned by ToDocument for record types it has no
// PDF rendering defined for.
var ErrUnsupportedType = errors.New("no document rendering defined for record type")

type column struct {
	header string
	index  int
}

type schema struct {
	columns []column
}

// Schemas are built once per record type and reused across requests.
var schemaCache sync.Map // reflect.Type -> schema

func schemaFor(t reflect.Type) (schema, error) {
	if cached, ok := schemaCache.Load(t); ok {
		return cached.(schema), nil
	}
	if t.Kind() != reflect.Struct {
		return schema{}, fmt.Errorf("export: record type %s is not a struct", t)
	}

	var sch schema
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		sch.columns = append(sch.columns, column{header: f.Name, index: i})
	}
	if len(sch.columns) == 0 {
		return schema{}, fmt.Errorf("export: record type %s has no exported fields", t)
	}

	schemaCache.Store(t, sch)
	return sch, nil
}

// formatValue stringifies a single field. Booleans deliberately render as
// "True"/"False" to match the legacy export files consumers already parse.
func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return "True"
		}
		return "False"
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Pointer:
		if v.IsNil() {
			return ""
		}
		return formatValue(v.Elem())
	default:
		return fmt.Sprint(v.Interface())
	}
}

package adapter

import (
	"math"
	"reflect"
)

// normalize converts v into the driver value stored for a column of type t.
// Pointers are dereferenced and named types are reduced to their kind.
// A nil result means SQL NULL. ok is false when v cannot represent t.
func normalize(t FieldType, v any) (out any, ok bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, true
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, true
		}
		rv = rv.Elem()
	}

	switch t {
	case TypeText:
		if rv.Kind() == reflect.String {
			return rv.String(), true
		}
	case TypeInt64:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int(), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u := rv.Uint()
			if u > math.MaxInt64 {
				return nil, false
			}
			return int64(u), true
		}
	case TypeFloat64:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			return rv.Float(), true
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), true
		}
	case TypeBool:
		if rv.Kind() == reflect.Bool {
			return rv.Bool(), true
		}
	case TypeBlob:
		switch {
		case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
			if rv.IsNil() {
				return nil, true
			}
			return rv.Bytes(), true
		case rv.Kind() == reflect.String:
			return []byte(rv.String()), true
		}
	}
	return nil, false
}

// assignInt stores id into the integer field p points to.
// p may point to an integer or to a pointer to an integer.
func assignInt(p any, id int64) bool {
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false
	}
	rv = rv.Elem()
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}
	if !rv.CanSet() {
		return false
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.OverflowInt(id) {
			return false
		}
		rv.SetInt(id)
		return true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if id < 0 || rv.OverflowUint(uint64(id)) {
			return false
		}
		rv.SetUint(uint64(id))
		return true
	}
	return false
}

// validKey reports whether a normalized primary key value identifies a row.
// Only autoincrement keys use zero as "not assigned yet"; a caller-supplied
// key identifies a row whenever it is non-nil, including 0 and "".
func validKey(v any, autoIncrement bool) bool {
	if v == nil {
		return false
	}
	if autoIncrement {
		id, ok := v.(int64)
		return ok && id != 0
	}
	return true
}

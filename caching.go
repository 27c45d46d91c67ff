package adapter

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/tinywasm/fmt"
	"github.com/zeebo/xxh3"
)

// HashKey folds values into one 64-bit caching key with xxh3.
// It is meant for WithCachingKey on composite or text keys. Distinct inputs
// may collide, so only use it where a rare collision is acceptable.
func HashKey(values ...any) int64 {
	buf := make([]byte, 0, 16*len(values))
	for _, v := range values {
		buf = appendKeyPart(buf, v)
	}
	return int64(xxh3.Hash(buf))
}

// appendKeyPart writes a type tag followed by an unambiguous encoding of v,
// so that ("ab", "c") and ("a", "bc") hash differently.
func appendKeyPart(buf []byte, v any) []byte {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return append(buf, 'n')
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return append(buf, 'n')
	}

	switch rv.Kind() {
	case reflect.String:
		buf = append(buf, 's')
		buf = binary.AppendUvarint(buf, uint64(rv.Len()))
		return append(buf, rv.String()...)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf = append(buf, 'i')
		return binary.BigEndian.AppendUint64(buf, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		buf = append(buf, 'u')
		return binary.BigEndian.AppendUint64(buf, rv.Uint())
	case reflect.Float32, reflect.Float64:
		buf = append(buf, 'f')
		return binary.BigEndian.AppendUint64(buf, math.Float64bits(rv.Float()))
	case reflect.Bool:
		if rv.Bool() {
			return append(buf, 't')
		}
		return append(buf, 'F')
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			buf = append(buf, 'y')
			buf = binary.AppendUvarint(buf, uint64(rv.Len()))
			return append(buf, rv.Bytes()...)
		}
	}

	s := fmt.Sprintf("%v", rv.Interface())
	buf = append(buf, 'v')
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

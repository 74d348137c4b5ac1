// File: codec/text.go
// Author: momentics <momentics@gmail.com>

package codec

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/momentics/hioload-ipc/api"
)

// Scalar lists the value types the text codec understands, named types
// included.
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// TextCodec implements api.Codec for a scalar type.
type TextCodec[T Scalar] struct{}

var _ api.Codec[int] = TextCodec[int]{}

// Text returns the text codec for T.
func Text[T Scalar]() TextCodec[T] { return TextCodec[T]{} }

// Encode renders v in its textual form.
func (TextCodec[T]) Encode(v T) ([]byte, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return []byte(rv.String()), nil
	case reflect.Bool:
		return strconv.AppendBool(nil, rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(nil, rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.AppendUint(nil, rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.AppendFloat(nil, rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.AppendFloat(nil, rv.Float(), 'g', -1, 64), nil
	}
	return nil, api.NewError(api.ErrCodeInvalidArgument, "encode", "", fmt.Errorf("unsupported kind %s", rv.Kind()))
}

// Decode parses b back into a T. Strings are returned as-is; every other
// kind is trimmed of surrounding whitespace and parsed strictly.
func (TextCodec[T]) Decode(b []byte) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.String {
		rv.SetString(string(b))
		return v, nil
	}

	s := strings.TrimSpace(string(b))
	var err error
	switch rv.Kind() {
	case reflect.Bool:
		var x bool
		if x, err = strconv.ParseBool(s); err == nil {
			rv.SetBool(x)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var x int64
		if x, err = strconv.ParseInt(s, 10, rv.Type().Bits()); err == nil {
			rv.SetInt(x)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var x uint64
		if x, err = strconv.ParseUint(s, 10, rv.Type().Bits()); err == nil {
			rv.SetUint(x)
		}
	case reflect.Float32, reflect.Float64:
		var x float64
		if x, err = strconv.ParseFloat(s, rv.Type().Bits()); err == nil {
			rv.SetFloat(x)
		}
	default:
		err = fmt.Errorf("unsupported kind %s", rv.Kind())
	}
	if err != nil {
		var zero T
		return zero, api.NewError(api.ErrCodeDecode, "decode", "", fmt.Errorf("%q as %T: %w", s, zero, err))
	}
	return v, nil
}

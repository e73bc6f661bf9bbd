package sqlforge

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the type carried by a Value.
type Kind uint8

// The closed set of value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Value is a tagged union over the types a statement parameter can carry:
// null, bool, 64-bit signed integer, 64-bit float, string, or an ordered
// array of values. Values are immutable after construction and freely
// copyable.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a 64-bit signed integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a 64-bit float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array value holding the given elements in order.
// Arrays may nest, but validators bound the total size when the source
// is untrusted.
func Array(vs ...Value) Value {
	arr := make([]Value, len(vs))
	copy(arr, vs)
	return Value{kind: KindArray, arr: arr}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// BoolVal returns the boolean payload. It is only meaningful for
// KindBool values.
func (v Value) BoolVal() bool { return v.b }

// IntVal returns the integer payload. It is only meaningful for
// KindInt values.
func (v Value) IntVal() int64 { return v.i }

// FloatVal returns the float payload. It is only meaningful for
// KindFloat values.
func (v Value) FloatVal() float64 { return v.f }

// StringVal returns the string payload. It is only meaningful for
// KindString values.
func (v Value) StringVal() string { return v.s }

// Elems returns the array elements. It returns nil for non-array values.
// The returned slice must not be mutated.
func (v Value) Elems() []Value { return v.arr }

// Equal reports whether two values have the same kind and payload.
// Arrays are compared element-wise.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindInt:
		return v.i == w.i
	case KindFloat:
		return v.f == w.f
	case KindString:
		return v.s == w.s
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Driver converts the value to a type accepted by database/sql drivers.
// Arrays convert to []any; see QueryResult.Args for the Postgres array
// binding.
func (v Value) Driver() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		elems := make([]any, len(v.arr))
		for i, e := range v.arr {
			elems[i] = e.Driver()
		}
		return elems
	default:
		return nil
	}
}

// String returns a debug representation of the value. Strings are
// quoted, arrays render as bracketed lists.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return "<invalid>"
	}
}

// ValueOf converts a native Go value to a Value. It accepts booleans,
// integers, floats, strings, nil, []any (converted element-wise),
// json.Number, uuid.UUID and time.Time (both converted to strings, time
// in RFC 3339 format), and Value itself. Unsupported types return an
// error.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Int(int64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return Value{}, fmt.Errorf("sqlforge: uint64 value %d overflows int64", v)
		}
		return Int(int64(v)), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("sqlforge: invalid number %q", v.String())
		}
		return Float(f), nil
	case uuid.UUID:
		return String(v.String()), nil
	case time.Time:
		return String(v.Format(time.RFC3339)), nil
	case []any:
		elems := make([]Value, len(v))
		for i, e := range v {
			ev, err := ValueOf(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = ev
		}
		return Array(elems...), nil
	default:
		return Value{}, fmt.Errorf("sqlforge: unsupported value type %T", v)
	}
}

// MustValueOf is like ValueOf but panics on unsupported types. Intended
// for trusted call sites with compile-time-known value types.
func MustValueOf(v any) Value {
	val, err := ValueOf(v)
	if err != nil {
		panic(err)
	}
	return val
}

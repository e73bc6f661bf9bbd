package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/sqlforge"
)

// Cursor limits. Both are checked on encode and decode.
const (
	MaxFields     = 16
	MaxEncodedLen = 4096
)

// Sentinel cursor errors, matchable with errors.Is.
var (
	// ErrCursorTooLarge is returned when the encoded token exceeds
	// MaxEncodedLen bytes. The check precedes decoding.
	ErrCursorTooLarge = errors.New("sqlforge: cursor token too large")

	// ErrCursorEncoding is returned when the token is not valid
	// URL-safe base64.
	ErrCursorEncoding = errors.New("sqlforge: cursor token has invalid encoding")

	// ErrCursorFormat is returned when the decoded payload is not a
	// valid cursor record.
	ErrCursorFormat = errors.New("sqlforge: cursor payload is malformed")

	// ErrCursorTooManyFields is returned when the cursor holds more
	// than MaxFields fields.
	ErrCursorTooManyFields = errors.New("sqlforge: cursor has too many fields")
)

// CursorError wraps a sentinel cursor error with detail. errors.Is
// matches the sentinel through Unwrap.
type CursorError struct {
	err    error
	detail string
}

// Error returns the error string.
func (e *CursorError) Error() string {
	if e.detail != "" {
		return e.err.Error() + ": " + e.detail
	}
	return e.err.Error()
}

// Unwrap returns the sentinel error.
func (e *CursorError) Unwrap() error { return e.err }

// IsCursorError reports whether err is a cursor error.
func IsCursorError(err error) bool {
	if err == nil {
		return false
	}
	var e *CursorError
	return errors.As(err, &e)
}

func cursorErr(sentinel error, format string, args ...any) error {
	return &CursorError{err: sentinel, detail: fmt.Sprintf(format, args...)}
}

// Field is one (name, value) pair of a cursor.
type Field struct {
	Name  string
	Value sqlforge.Value
}

// Cursor is an ordered list of (field, value) pairs capturing the
// sort-key values of a pagination boundary row. Cursors are never
// mutated after creation; Encode and Decode are the only
// transformations.
type Cursor struct {
	fields []Field
}

// NewCursor returns a cursor over the given fields. The fields are
// copied; the cursor does not alias the input slice.
func NewCursor(fields ...Field) *Cursor {
	fs := make([]Field, len(fields))
	copy(fs, fields)
	return &Cursor{fields: fs}
}

// Fields returns the cursor's fields in order. The returned slice must
// not be mutated.
func (c *Cursor) Fields() []Field { return c.fields }

// Len returns the number of fields.
func (c *Cursor) Len() int { return len(c.fields) }

// Value returns the value for the named field and whether it exists.
func (c *Cursor) Value(name string) (sqlforge.Value, bool) {
	for _, f := range c.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return sqlforge.Value{}, false
}

// cursorEncoding is the URL-safe, unpadded base64 alphabet used for
// tokens.
var cursorEncoding = base64.RawURLEncoding

// wireField is the msgpack wire form of one cursor field. The kind tag
// selects which payload field is meaningful.
type wireField struct {
	Name string  `msgpack:"n"`
	Kind uint8   `msgpack:"k"`
	B    bool    `msgpack:"b,omitempty"`
	I    int64   `msgpack:"i,omitempty"`
	F    float64 `msgpack:"f,omitempty"`
	S    string  `msgpack:"s,omitempty"`
}

// Encode serializes the cursor to an opaque token. Array values are
// rejected; cursors carry primitives only. Encoding fails if the cursor
// exceeds MaxFields fields or the token would exceed MaxEncodedLen
// bytes.
func (c *Cursor) Encode() (string, error) {
	if len(c.fields) > MaxFields {
		return "", cursorErr(ErrCursorTooManyFields, "%d fields, limit %d", len(c.fields), MaxFields)
	}
	record := make([]wireField, len(c.fields))
	for i, f := range c.fields {
		w := wireField{Name: f.Name, Kind: uint8(f.Value.Kind())}
		switch f.Value.Kind() {
		case sqlforge.KindNull:
		case sqlforge.KindBool:
			w.B = f.Value.BoolVal()
		case sqlforge.KindInt:
			w.I = f.Value.IntVal()
		case sqlforge.KindFloat:
			w.F = f.Value.FloatVal()
		case sqlforge.KindString:
			w.S = f.Value.StringVal()
		default:
			return "", cursorErr(ErrCursorFormat, "field %q has non-primitive kind %s", f.Name, f.Value.Kind())
		}
		record[i] = w
	}
	payload, err := msgpack.Marshal(record)
	if err != nil {
		return "", cursorErr(ErrCursorFormat, "encode: %v", err)
	}
	token := cursorEncoding.EncodeToString(payload)
	if len(token) > MaxEncodedLen {
		return "", cursorErr(ErrCursorTooLarge, "%d bytes, limit %d", len(token), MaxEncodedLen)
	}
	return token, nil
}

// Decode parses an opaque token back into a cursor. The size check runs
// before base64 decoding, and the field-count check after the payload
// is parsed; each failure mode carries its own sentinel.
func Decode(token string) (*Cursor, error) {
	if len(token) > MaxEncodedLen {
		return nil, cursorErr(ErrCursorTooLarge, "%d bytes, limit %d", len(token), MaxEncodedLen)
	}
	payload, err := cursorEncoding.DecodeString(token)
	if err != nil {
		return nil, cursorErr(ErrCursorEncoding, "%v", err)
	}
	var record []wireField
	if err := msgpack.Unmarshal(payload, &record); err != nil {
		return nil, cursorErr(ErrCursorFormat, "%v", err)
	}
	if len(record) > MaxFields {
		return nil, cursorErr(ErrCursorTooManyFields, "%d fields, limit %d", len(record), MaxFields)
	}
	fields := make([]Field, len(record))
	for i, w := range record {
		var v sqlforge.Value
		switch sqlforge.Kind(w.Kind) {
		case sqlforge.KindNull:
			v = sqlforge.Null()
		case sqlforge.KindBool:
			v = sqlforge.Bool(w.B)
		case sqlforge.KindInt:
			v = sqlforge.Int(w.I)
		case sqlforge.KindFloat:
			v = sqlforge.Float(w.F)
		case sqlforge.KindString:
			v = sqlforge.String(w.S)
		default:
			return nil, cursorErr(ErrCursorFormat, "field %q has unknown kind tag %d", w.Name, w.Kind)
		}
		fields[i] = Field{Name: w.Name, Value: v}
	}
	return &Cursor{fields: fields}, nil
}

// DecodeAny accepts the forms a transport layer may supply: nil or an
// empty string mean no pagination constraint (nil cursor, no error), a
// string is decoded as a token, and an already-decoded *Cursor passes
// through. Any other type is a format error.
func DecodeAny(v any) (*Cursor, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case *Cursor:
		return v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return Decode(v)
	default:
		return nil, cursorErr(ErrCursorFormat, "unsupported cursor type %T", v)
	}
}

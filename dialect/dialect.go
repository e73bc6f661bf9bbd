package dialect

import (
	"fmt"

	"github.com/syssam/sqlforge"
)

// Supported dialect names.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// Dialect encapsulates the SQL syntax of one database engine. All
// methods are pure; implementations carry no state.
type Dialect interface {
	// Name returns the dialect name (Postgres or SQLite).
	Name() string

	// Param returns the placeholder text for the 1-based parameter
	// index i.
	Param(i int) string

	// BoolLit returns the dialect's boolean literal.
	BoolLit(b bool) string

	// RegexOp returns the regular-expression match operator, or the
	// dialect's pattern-match fallback when no native operator exists.
	RegexOp() string

	// SupportsILike reports whether the dialect has a native
	// case-insensitive pattern match.
	SupportsILike() bool

	// InClause compiles a membership test over the given values,
	// numbering placeholders from start. It returns the SQL fragment
	// and the parameters it consumes.
	InClause(col string, values []sqlforge.Value, start int) (string, []sqlforge.Value)

	// NotInClause is the negated form of InClause.
	NotInClause(col string, values []sqlforge.Value, start int) (string, []sqlforge.Value)

	// HasPrefixClause returns a pattern-match fragment testing that col
	// starts with the parameter at index i.
	HasPrefixClause(col string, i int) string

	// HasSuffixClause returns a pattern-match fragment testing that col
	// ends with the parameter at index i.
	HasSuffixClause(col string, i int) string

	// ContainsClause returns a pattern-match fragment testing that col
	// contains the parameter at index i.
	ContainsClause(col string, i int) string
}

// New returns the dialect with the given name.
func New(name string) (Dialect, error) {
	switch name {
	case Postgres:
		return postgres{}, nil
	case SQLite:
		return sqlite{}, nil
	default:
		return nil, fmt.Errorf("sqlforge: unsupported dialect %q", name)
	}
}

// MustNew is like New but panics on an unsupported name.
func MustNew(name string) Dialect {
	d, err := New(name)
	if err != nil {
		panic(err)
	}
	return d
}

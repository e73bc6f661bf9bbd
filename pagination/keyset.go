package pagination

import (
	"errors"
	"fmt"

	"github.com/syssam/sqlforge"
)

// Direction selects which side of the cursor a page lies on.
type Direction uint8

// Page directions.
const (
	After Direction = iota
	Before
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Before {
		return "before"
	}
	return "after"
}

// Keyset errors.
var (
	// ErrMissingCursorValue is returned when the cursor supplies no
	// value for one of the sort fields. The whole construction fails
	// rather than silently omitting the field.
	ErrMissingCursorValue = errors.New("sqlforge: cursor is missing a value for a sort field")

	// ErrEmptyKeyset is returned when the keyset has no sort fields or
	// no cursor.
	ErrEmptyKeyset = errors.New("sqlforge: keyset requires sort fields and a cursor")
)

// Keyset describes a seek-pagination condition: the query's sort fields
// in priority order, the boundary cursor, and the page direction.
type Keyset struct {
	Sorts  []sqlforge.SortField
	Cursor *Cursor
	Dir    Direction
}

// ToFilterExpr produces the seek predicate. For one sort field it is a
// single comparison; for N fields it is N OR-branches where branch i
// ANDs equalities on fields 0..i-1 with a directional comparison on
// field i. The comparison operator follows the field's own direction:
// after+asc and before+desc compare with >, the other two with <.
func (k Keyset) ToFilterExpr() (sqlforge.FilterExpr, error) {
	if len(k.Sorts) == 0 || k.Cursor == nil {
		return nil, ErrEmptyKeyset
	}
	values := make([]sqlforge.Value, len(k.Sorts))
	for i, s := range k.Sorts {
		v, ok := k.Cursor.Value(s.Field)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingCursorValue, s.Field)
		}
		values[i] = v
	}
	branches := make([]sqlforge.FilterExpr, len(k.Sorts))
	for i, s := range k.Sorts {
		conj := make([]sqlforge.FilterExpr, 0, i+1)
		for j := 0; j < i; j++ {
			conj = append(conj, sqlforge.Simple(k.Sorts[j].Field, sqlforge.OpEQ, values[j]))
		}
		conj = append(conj, sqlforge.Simple(s.Field, k.compareOp(s.Order), values[i]))
		branches[i] = sqlforge.And(conj...)
	}
	return sqlforge.Or(branches...), nil
}

func (k Keyset) compareOp(o sqlforge.Order) sqlforge.Op {
	forward := (k.Dir == After) == (o == sqlforge.OrderAsc)
	if forward {
		return sqlforge.OpGT
	}
	return sqlforge.OpLT
}

package dialect

import (
	"strconv"
	"strings"

	"github.com/syssam/sqlforge"
)

// sqlite implements Dialect for SQLite.
type sqlite struct{}

func (sqlite) Name() string { return SQLite }

func (sqlite) Param(i int) string { return "?" + strconv.Itoa(i) }

func (sqlite) BoolLit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// RegexOp falls back to LIKE; SQLite builds without a REGEXP function
// by default. See the package documentation for the behavioral gap.
func (sqlite) RegexOp() string { return "LIKE" }

func (sqlite) SupportsILike() bool { return false }

// InClause expands the list to one placeholder per element. "IN ()" is
// invalid SQLite syntax, so an empty list compiles to a false literal.
func (s sqlite) InClause(col string, values []sqlforge.Value, start int) (string, []sqlforge.Value) {
	if len(values) == 0 {
		return s.BoolLit(false), nil
	}
	return col + " IN (" + s.placeholders(len(values), start) + ")", values
}

func (s sqlite) NotInClause(col string, values []sqlforge.Value, start int) (string, []sqlforge.Value) {
	if len(values) == 0 {
		return s.BoolLit(true), nil
	}
	return col + " NOT IN (" + s.placeholders(len(values), start) + ")", values
}

func (s sqlite) placeholders(n, start int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('?')
		b.WriteString(strconv.Itoa(start + i))
	}
	return b.String()
}

func (s sqlite) HasPrefixClause(col string, i int) string {
	return col + " LIKE " + s.Param(i) + " || '%'"
}

func (s sqlite) HasSuffixClause(col string, i int) string {
	return col + " LIKE '%' || " + s.Param(i)
}

func (s sqlite) ContainsClause(col string, i int) string {
	return col + " LIKE '%' || " + s.Param(i) + " || '%'"
}

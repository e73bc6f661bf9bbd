package dialect

import (
	"strconv"

	"github.com/syssam/sqlforge"
)

// postgres implements Dialect for PostgreSQL.
type postgres struct{}

func (postgres) Name() string { return Postgres }

func (postgres) Param(i int) string { return "$" + strconv.Itoa(i) }

func (postgres) BoolLit(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func (postgres) RegexOp() string { return "~" }

func (postgres) SupportsILike() bool { return true }

// InClause binds the whole list as a single array parameter. Empty
// lists still produce one parameter; "col = ANY($1)" over an empty
// array matches no rows, which is the desired semantics.
func (p postgres) InClause(col string, values []sqlforge.Value, start int) (string, []sqlforge.Value) {
	return col + " = ANY(" + p.Param(start) + ")", []sqlforge.Value{sqlforge.Array(values...)}
}

func (p postgres) NotInClause(col string, values []sqlforge.Value, start int) (string, []sqlforge.Value) {
	return col + " != ALL(" + p.Param(start) + ")", []sqlforge.Value{sqlforge.Array(values...)}
}

func (p postgres) HasPrefixClause(col string, i int) string {
	return col + " LIKE " + p.Param(i) + " || '%'"
}

func (p postgres) HasSuffixClause(col string, i int) string {
	return col + " LIKE '%' || " + p.Param(i)
}

func (p postgres) ContainsClause(col string, i int) string {
	return col + " LIKE '%' || " + p.Param(i) + " || '%'"
}

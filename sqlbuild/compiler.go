package sqlbuild

import (
	"fmt"
	"strings"

	"github.com/syssam/sqlforge"
	"github.com/syssam/sqlforge/dialect"
)

// CompileExpr lowers a filter expression tree to an SQL fragment, the
// parameters it consumes, and the next free 1-based parameter index.
// Compound And/Or nodes render parenthesized with a single child
// returned unwrapped; Not wraps its child. Empty compounds produce the
// degenerate but syntactically embeddable fragments "()" and "NOT ()".
func CompileExpr(x sqlforge.FilterExpr, d dialect.Dialect, start int) (string, []sqlforge.Value, int) {
	switch x := x.(type) {
	case nil:
		return "", nil, start
	case *sqlforge.SimpleExpr:
		return CompileFilter(x.Filter, d, start)
	case *sqlforge.CompoundExpr:
		return compileCompound(x, d, start)
	default:
		panic(fmt.Sprintf("sqlforge: unknown filter expression type %T", x))
	}
}

func compileCompound(x *sqlforge.CompoundExpr, d dialect.Dialect, start int) (string, []sqlforge.Value, int) {
	if x.Op == sqlforge.LogicNot {
		if len(x.Exprs) == 0 {
			return "NOT ()", nil, start
		}
		inner, params, next := joinExprs(x.Exprs, sqlforge.LogicAnd, d, start)
		return "NOT (" + inner + ")", params, next
	}
	switch len(x.Exprs) {
	case 0:
		return "()", nil, start
	case 1:
		return CompileExpr(x.Exprs[0], d, start)
	default:
		inner, params, next := joinExprs(x.Exprs, x.Op, d, start)
		return "(" + inner + ")", params, next
	}
}

func joinExprs(exprs []sqlforge.FilterExpr, op sqlforge.LogicOp, d dialect.Dialect, start int) (string, []sqlforge.Value, int) {
	parts := make([]string, 0, len(exprs))
	var params []sqlforge.Value
	next := start
	for _, e := range exprs {
		var sql string
		var ps []sqlforge.Value
		sql, ps, next = CompileExpr(e, d, next)
		parts = append(parts, sql)
		params = append(params, ps...)
	}
	return strings.Join(parts, " "+op.String()+" "), params, next
}

// CompileFilter lowers a single comparison to an SQL fragment,
// parameters, and the next free parameter index.
func CompileFilter(f sqlforge.Filter, d dialect.Dialect, start int) (string, []sqlforge.Value, int) {
	switch {
	case f.Op == sqlforge.OpEQ && f.Value.IsNull():
		return f.Field + " IS NULL", nil, start
	case f.Op == sqlforge.OpNEQ && f.Value.IsNull():
		return f.Field + " IS NOT NULL", nil, start
	}
	switch f.Op {
	case sqlforge.OpIn, sqlforge.OpNotIn:
		return compileMembership(f, d, start)
	case sqlforge.OpRegex:
		return f.Field + " " + d.RegexOp() + " " + d.Param(start), []sqlforge.Value{f.Value}, start + 1
	case sqlforge.OpILike:
		op := "LIKE"
		if d.SupportsILike() {
			op = "ILIKE"
		}
		return f.Field + " " + op + " " + d.Param(start), []sqlforge.Value{f.Value}, start + 1
	case sqlforge.OpHasPrefix:
		return d.HasPrefixClause(f.Field, start), []sqlforge.Value{f.Value}, start + 1
	case sqlforge.OpHasSuffix:
		return d.HasSuffixClause(f.Field, start), []sqlforge.Value{f.Value}, start + 1
	case sqlforge.OpContains:
		return d.ContainsClause(f.Field, start), []sqlforge.Value{f.Value}, start + 1
	case sqlforge.OpBetween:
		return compileBetween(f, d, start)
	default:
		return f.Field + " " + f.Op.SQL() + " " + d.Param(start), []sqlforge.Value{f.Value}, start + 1
	}
}

// compileMembership delegates IN/NOT IN to the dialect. A non-array
// operand is treated as a one-element list, so trusted callers passing
// a scalar still get valid SQL. The index advances by however many
// placeholders the dialect emitted.
func compileMembership(f sqlforge.Filter, d dialect.Dialect, start int) (string, []sqlforge.Value, int) {
	values := f.Value.Elems()
	if f.Value.Kind() != sqlforge.KindArray {
		values = []sqlforge.Value{f.Value}
	}
	var sql string
	var params []sqlforge.Value
	if f.Op == sqlforge.OpIn {
		sql, params = d.InClause(f.Field, values, start)
	} else {
		sql, params = d.NotInClause(f.Field, values, start)
	}
	return sql, params, start + len(params)
}

// compileBetween requires an array of exactly two elements. Any other
// shape degrades to a permanently false fragment annotated with the bad
// length: a malformed filter yields zero rows instead of a crash or a
// malformed statement.
func compileBetween(f sqlforge.Filter, d dialect.Dialect, start int) (string, []sqlforge.Value, int) {
	if f.Value.Kind() == sqlforge.KindArray && len(f.Value.Elems()) == 2 {
		elems := f.Value.Elems()
		sql := f.Field + " BETWEEN " + d.Param(start) + " AND " + d.Param(start+1)
		return sql, []sqlforge.Value{elems[0], elems[1]}, start + 2
	}
	n := 1
	if f.Value.Kind() == sqlforge.KindArray {
		n = len(f.Value.Elems())
	}
	return fmt.Sprintf("1=0 /* BETWEEN expects exactly 2 values, got %d */", n), nil, start
}

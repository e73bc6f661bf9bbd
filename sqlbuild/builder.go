package sqlbuild

import (
	"strings"

	"github.com/syssam/sqlforge"
	"github.com/syssam/sqlforge/dialect"
)

// state tracks builder consumption. Build freezes the builder; any use
// afterward is a programmer error.
type state struct {
	built bool
}

func (s *state) assertLive() {
	if s.built {
		panic("sqlforge: builder used after Build")
	}
}

func (s *state) freeze() {
	s.assertLive()
	s.built = true
}

// whereClause accumulates WHERE conditions shared by the select, update
// and delete builders: compound filter expressions first, then simple
// filters, all AND-joined.
type whereClause struct {
	exprs   []sqlforge.FilterExpr
	filters []sqlforge.Filter
}

func (w *whereClause) addExpr(x sqlforge.FilterExpr) {
	if x != nil {
		w.exprs = append(w.exprs, x)
	}
}

func (w *whereClause) addFilter(field string, op sqlforge.Op, v sqlforge.Value) {
	checkIdent("column", field)
	w.filters = append(w.filters, sqlforge.Filter{Field: field, Op: op, Value: v})
}

// compile renders the accumulated conditions, threading the parameter
// index. It returns an empty string when no conditions exist.
func (w *whereClause) compile(d dialect.Dialect, start int) (string, []sqlforge.Value, int) {
	parts := make([]string, 0, len(w.exprs)+len(w.filters))
	var params []sqlforge.Value
	next := start
	for _, x := range w.exprs {
		var sql string
		var ps []sqlforge.Value
		sql, ps, next = CompileExpr(x, d, next)
		parts = append(parts, sql)
		params = append(params, ps...)
	}
	for _, f := range w.filters {
		var sql string
		var ps []sqlforge.Value
		sql, ps, next = CompileFilter(f, d, next)
		parts = append(parts, sql)
		params = append(params, ps...)
	}
	return strings.Join(parts, " AND "), params, next
}

// returning validates and stores RETURNING columns.
func returning(cols []string) []string {
	for _, c := range cols {
		checkIdent("column", c)
	}
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}

// writeReturning appends a RETURNING clause when columns were set.
func writeReturning(b *strings.Builder, cols []string) {
	if len(cols) > 0 {
		b.WriteString(" RETURNING ")
		b.WriteString(strings.Join(cols, ", "))
	}
}

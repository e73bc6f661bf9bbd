package sqlbuild

import (
	"strings"

	"github.com/syssam/sqlforge"
	"github.com/syssam/sqlforge/dialect"
)

// DeleteBuilder assembles a DELETE statement.
type DeleteBuilder struct {
	state
	d     dialect.Dialect
	table string
	where whereClause
	ret   []string
}

// Delete returns a DELETE builder for the given table. It panics when
// the table name is not a valid identifier.
func Delete(d dialect.Dialect, table string) *DeleteBuilder {
	checkIdent("table", table)
	return &DeleteBuilder{d: d, table: table}
}

// WhereExpr appends a compound filter condition.
func (b *DeleteBuilder) WhereExpr(x sqlforge.FilterExpr) *DeleteBuilder {
	b.assertLive()
	b.where.addExpr(x)
	return b
}

// Where appends a simple comparison.
func (b *DeleteBuilder) Where(field string, op sqlforge.Op, v sqlforge.Value) *DeleteBuilder {
	b.assertLive()
	b.where.addFilter(field, op, v)
	return b
}

// Returning sets the RETURNING columns.
func (b *DeleteBuilder) Returning(cols ...string) *DeleteBuilder {
	b.assertLive()
	b.ret = append(b.ret, returning(cols)...)
	return b
}

// Build assembles the statement and consumes the builder.
func (b *DeleteBuilder) Build() sqlforge.QueryResult {
	b.freeze()
	var sql strings.Builder
	sql.WriteString("DELETE FROM ")
	sql.WriteString(b.table)
	var params []sqlforge.Value
	if whereSQL, ps, _ := b.where.compile(b.d, 1); whereSQL != "" {
		sql.WriteString(" WHERE ")
		sql.WriteString(whereSQL)
		params = ps
	}
	writeReturning(&sql, b.ret)
	return sqlforge.QueryResult{SQL: sql.String(), Params: params, Dialect: b.d.Name()}
}

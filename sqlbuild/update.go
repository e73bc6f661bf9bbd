package sqlbuild

import (
	"strings"

	"github.com/syssam/sqlforge"
	"github.com/syssam/sqlforge/dialect"
)

// assignment is one SET column/value pair.
type assignment struct {
	col string
	val sqlforge.Value
}

// UpdateBuilder assembles an UPDATE statement. SET assignments consume
// parameter indexes first; the WHERE clause continues the running
// index.
type UpdateBuilder struct {
	state
	d     dialect.Dialect
	table string
	sets  []assignment
	where whereClause
	ret   []string
}

// Update returns an UPDATE builder for the given table. It panics when
// the table name is not a valid identifier.
func Update(d dialect.Dialect, table string) *UpdateBuilder {
	checkIdent("table", table)
	return &UpdateBuilder{d: d, table: table}
}

// Set appends a column assignment. Each assignment consumes one
// parameter.
func (b *UpdateBuilder) Set(col string, v sqlforge.Value) *UpdateBuilder {
	b.assertLive()
	checkIdent("column", col)
	b.sets = append(b.sets, assignment{col: col, val: v})
	return b
}

// WhereExpr appends a compound filter condition.
func (b *UpdateBuilder) WhereExpr(x sqlforge.FilterExpr) *UpdateBuilder {
	b.assertLive()
	b.where.addExpr(x)
	return b
}

// Where appends a simple comparison.
func (b *UpdateBuilder) Where(field string, op sqlforge.Op, v sqlforge.Value) *UpdateBuilder {
	b.assertLive()
	b.where.addFilter(field, op, v)
	return b
}

// Returning sets the RETURNING columns.
func (b *UpdateBuilder) Returning(cols ...string) *UpdateBuilder {
	b.assertLive()
	b.ret = append(b.ret, returning(cols)...)
	return b
}

// Build assembles the statement and consumes the builder.
func (b *UpdateBuilder) Build() sqlforge.QueryResult {
	b.freeze()
	if len(b.sets) == 0 {
		panic("sqlforge: Update requires at least one Set")
	}
	var sql strings.Builder
	sql.WriteString("UPDATE ")
	sql.WriteString(b.table)
	sql.WriteString(" SET ")

	params := make([]sqlforge.Value, 0, len(b.sets))
	next := 1
	for i, a := range b.sets {
		if i > 0 {
			sql.WriteString(", ")
		}
		sql.WriteString(a.col)
		sql.WriteString(" = ")
		sql.WriteString(b.d.Param(next))
		params = append(params, a.val)
		next++
	}
	if whereSQL, ps, _ := b.where.compile(b.d, next); whereSQL != "" {
		sql.WriteString(" WHERE ")
		sql.WriteString(whereSQL)
		params = append(params, ps...)
	}
	writeReturning(&sql, b.ret)
	return sqlforge.QueryResult{SQL: sql.String(), Params: params, Dialect: b.d.Name()}
}

package sqlbuild

import (
	"fmt"
	"strings"

	"github.com/syssam/sqlforge"
	"github.com/syssam/sqlforge/dialect"
)

// InsertBuilder assembles an INSERT statement with one or more value
// rows and an optional RETURNING clause.
type InsertBuilder struct {
	state
	d       dialect.Dialect
	table   string
	columns []string
	rows    [][]sqlforge.Value
	ret     []string
}

// Insert returns an INSERT builder for the given table. It panics when
// the table name is not a valid identifier.
func Insert(d dialect.Dialect, table string) *InsertBuilder {
	checkIdent("table", table)
	return &InsertBuilder{d: d, table: table}
}

// Columns sets the column list. It must be called before Values.
func (b *InsertBuilder) Columns(cols ...string) *InsertBuilder {
	b.assertLive()
	for _, c := range cols {
		checkIdent("column", c)
	}
	b.columns = append(b.columns, cols...)
	return b
}

// Values appends one row. The value count must match the column count;
// a mismatch is a programmer error and panics. Calling Values again
// appends an additional row group.
func (b *InsertBuilder) Values(vs ...sqlforge.Value) *InsertBuilder {
	b.assertLive()
	if len(b.columns) == 0 {
		panic("sqlforge: Insert Values called before Columns")
	}
	if len(vs) != len(b.columns) {
		panic(fmt.Sprintf("sqlforge: Insert row has %d values for %d columns", len(vs), len(b.columns)))
	}
	row := make([]sqlforge.Value, len(vs))
	copy(row, vs)
	b.rows = append(b.rows, row)
	return b
}

// Returning sets the RETURNING columns.
func (b *InsertBuilder) Returning(cols ...string) *InsertBuilder {
	b.assertLive()
	b.ret = append(b.ret, returning(cols)...)
	return b
}

// Build assembles the statement and consumes the builder. Each column
// of each row becomes one placeholder, numbered in insertion order.
func (b *InsertBuilder) Build() sqlforge.QueryResult {
	b.freeze()
	if len(b.rows) == 0 {
		panic("sqlforge: Insert requires at least one row")
	}
	var sql strings.Builder
	sql.WriteString("INSERT INTO ")
	sql.WriteString(b.table)
	sql.WriteString(" (")
	sql.WriteString(strings.Join(b.columns, ", "))
	sql.WriteString(") VALUES ")

	params := make([]sqlforge.Value, 0, len(b.rows)*len(b.columns))
	next := 1
	for i, row := range b.rows {
		if i > 0 {
			sql.WriteString(", ")
		}
		sql.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				sql.WriteString(", ")
			}
			sql.WriteString(b.d.Param(next))
			params = append(params, v)
			next++
		}
		sql.WriteByte(')')
	}
	writeReturning(&sql, b.ret)
	return sqlforge.QueryResult{SQL: sql.String(), Params: params, Dialect: b.d.Name()}
}

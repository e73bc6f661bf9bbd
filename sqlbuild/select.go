package sqlbuild

import (
	"strconv"
	"strings"

	"github.com/syssam/sqlforge"
	"github.com/syssam/sqlforge/dialect"
	"github.com/syssam/sqlforge/pagination"
)

// SelectBuilder assembles a SELECT statement. Configuration methods
// return the receiver for chaining and Build is terminal.
type SelectBuilder struct {
	state
	d        dialect.Dialect
	table    string
	fields   []string
	computed []sqlforge.ComputedField
	aggs     []sqlforge.Aggregate
	where    whereClause
	groupBy  []string
	having   []sqlforge.FilterExpr
	orderBy  []sqlforge.SortField
	limit    *int
	offset   int
	cursor   *pagination.Cursor
	dir      pagination.Direction
}

// Select returns a SELECT builder for the given table. It panics when
// the table name is not a valid identifier.
func Select(d dialect.Dialect, table string) *SelectBuilder {
	checkIdent("table", table)
	return &SelectBuilder{d: d, table: table}
}

// Fields appends plain columns to the select list. Without fields,
// computed fields or aggregates, the statement selects "*".
func (b *SelectBuilder) Fields(cols ...string) *SelectBuilder {
	b.assertLive()
	for _, c := range cols {
		checkIdent("column", c)
	}
	b.fields = append(b.fields, cols...)
	return b
}

// Computed appends a raw SQL expression selected under an alias. The
// alias must be a valid identifier and the expression must pass
// ValidateExpr; both are checked here, at configuration time.
func (b *SelectBuilder) Computed(alias, expr string) *SelectBuilder {
	b.assertLive()
	checkIdent("alias", alias)
	checkExpr(expr)
	b.computed = append(b.computed, sqlforge.ComputedField{Alias: alias, Expr: expr})
	return b
}

// Aggregate appends aggregate terms to the select list.
func (b *SelectBuilder) Aggregate(aggs ...sqlforge.Aggregate) *SelectBuilder {
	b.assertLive()
	for _, a := range aggs {
		if a.Field != "" {
			checkIdent("column", a.Field)
		}
		if a.Alias != "" {
			checkIdent("alias", a.Alias)
		}
	}
	b.aggs = append(b.aggs, aggs...)
	return b
}

// WhereExpr appends a compound filter condition. Expressions from
// untrusted sources must pass a filterql.Validator first; field names
// inside the tree are not re-validated here.
func (b *SelectBuilder) WhereExpr(x sqlforge.FilterExpr) *SelectBuilder {
	b.assertLive()
	b.where.addExpr(x)
	return b
}

// Where appends a simple comparison. The field must be a valid
// identifier.
func (b *SelectBuilder) Where(field string, op sqlforge.Op, v sqlforge.Value) *SelectBuilder {
	b.assertLive()
	b.where.addFilter(field, op, v)
	return b
}

// GroupBy appends grouping columns.
func (b *SelectBuilder) GroupBy(cols ...string) *SelectBuilder {
	b.assertLive()
	for _, c := range cols {
		checkIdent("column", c)
	}
	b.groupBy = append(b.groupBy, cols...)
	return b
}

// Having appends a HAVING condition. Multiple conditions are AND-joined.
func (b *SelectBuilder) Having(x sqlforge.FilterExpr) *SelectBuilder {
	b.assertLive()
	if x != nil {
		b.having = append(b.having, x)
	}
	return b
}

// OrderBy appends sort fields in priority order.
func (b *SelectBuilder) OrderBy(sorts ...sqlforge.SortField) *SelectBuilder {
	b.assertLive()
	for _, s := range sorts {
		checkIdent("column", s.Field)
	}
	b.orderBy = append(b.orderBy, sorts...)
	return b
}

// Limit sets the row limit.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.assertLive()
	b.limit = &n
	return b
}

// Offset sets the row offset. Zero offsets are omitted from the
// statement.
func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	b.assertLive()
	if n < 0 {
		n = 0
	}
	b.offset = n
	return b
}

// Page converts page-number pagination to LIMIT/OFFSET with
// offset = (page-1)*limit, saturating at zero for page numbers below
// one.
func (b *SelectBuilder) Page(page, limit int) *SelectBuilder {
	b.assertLive()
	b.Limit(limit)
	if page > 1 && limit > 0 {
		b.Offset((page - 1) * limit)
	} else {
		b.Offset(0)
	}
	return b
}

// After adds a keyset condition selecting rows after the cursor
// position. When no sort fields were set, the cursor's own fields are
// used as an ascending sort.
func (b *SelectBuilder) After(c *pagination.Cursor) *SelectBuilder {
	b.assertLive()
	b.cursor, b.dir = c, pagination.After
	return b
}

// Before adds a keyset condition selecting rows before the cursor
// position.
func (b *SelectBuilder) Before(c *pagination.Cursor) *SelectBuilder {
	b.assertLive()
	b.cursor, b.dir = c, pagination.Before
	return b
}

// Build assembles the statement and consumes the builder.
func (b *SelectBuilder) Build() sqlforge.QueryResult {
	b.freeze()
	if b.cursor != nil && len(b.orderBy) == 0 {
		for _, f := range b.cursor.Fields() {
			checkIdent("column", f.Name)
			b.orderBy = append(b.orderBy, sqlforge.Asc(f.Name))
		}
	}

	var sql strings.Builder
	sql.WriteString("SELECT ")
	sql.WriteString(b.selectList())
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	var params []sqlforge.Value
	next := 1

	whereSQL, ps, n := b.where.compile(b.d, next)
	params, next = append(params, ps...), n
	if cursorSQL, cps, cn := b.cursorCondition(next); cursorSQL != "" {
		params, next = append(params, cps...), cn
		if whereSQL != "" {
			whereSQL += " AND " + cursorSQL
		} else {
			whereSQL = cursorSQL
		}
	}
	if whereSQL != "" {
		sql.WriteString(" WHERE ")
		sql.WriteString(whereSQL)
	}

	if len(b.groupBy) > 0 {
		sql.WriteString(" GROUP BY ")
		sql.WriteString(strings.Join(b.groupBy, ", "))
	}
	if len(b.having) > 0 {
		parts := make([]string, 0, len(b.having))
		for _, h := range b.having {
			var part string
			part, ps, next = CompileExpr(h, b.d, next)
			parts = append(parts, part)
			params = append(params, ps...)
		}
		sql.WriteString(" HAVING ")
		sql.WriteString(strings.Join(parts, " AND "))
	}
	if len(b.orderBy) > 0 {
		parts := make([]string, len(b.orderBy))
		for i, s := range b.orderBy {
			parts[i] = s.Field + " " + s.Order.String()
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(parts, ", "))
	}
	if b.limit != nil {
		sql.WriteString(" LIMIT ")
		sql.WriteString(strconv.Itoa(*b.limit))
	}
	if b.offset > 0 {
		sql.WriteString(" OFFSET ")
		sql.WriteString(strconv.Itoa(b.offset))
	}

	return sqlforge.QueryResult{SQL: sql.String(), Params: params, Dialect: b.d.Name()}
}

func (b *SelectBuilder) selectList() string {
	parts := make([]string, 0, len(b.fields)+len(b.computed)+len(b.aggs))
	parts = append(parts, b.fields...)
	for _, c := range b.computed {
		parts = append(parts, c.Expr+" AS "+c.Alias)
	}
	for _, a := range b.aggs {
		parts = append(parts, aggregateSQL(a))
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, ", ")
}

// cursorCondition compiles the keyset predicate. A cursor that does not
// supply a value for every sort field degrades to a permanently false
// condition, consistent with the engine's fail-closed handling of
// malformed input.
func (b *SelectBuilder) cursorCondition(start int) (string, []sqlforge.Value, int) {
	if b.cursor == nil {
		return "", nil, start
	}
	ks := pagination.Keyset{Sorts: b.orderBy, Cursor: b.cursor, Dir: b.dir}
	expr, err := ks.ToFilterExpr()
	if err != nil {
		return "1=0 /* cursor does not match sort fields */", nil, start
	}
	return CompileExpr(expr, b.d, start)
}

func aggregateSQL(a sqlforge.Aggregate) string {
	var s string
	switch a.Fn {
	case sqlforge.AggCount:
		if a.Field == "" {
			s = "COUNT(*)"
		} else {
			s = "COUNT(" + a.Field + ")"
		}
	case sqlforge.AggCountDistinct:
		s = "COUNT(DISTINCT " + a.Field + ")"
	case sqlforge.AggSum:
		s = "SUM(" + a.Field + ")"
	case sqlforge.AggAvg:
		s = "AVG(" + a.Field + ")"
	case sqlforge.AggMin:
		s = "MIN(" + a.Field + ")"
	case sqlforge.AggMax:
		s = "MAX(" + a.Field + ")"
	}
	if a.Alias != "" {
		s += " AS " + a.Alias
	}
	return s
}

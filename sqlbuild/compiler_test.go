package sqlbuild_test

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlforge"
	"github.com/syssam/sqlforge/dialect"
	"github.com/syssam/sqlforge/sqlbuild"
)

var (
	pg = dialect.MustNew(dialect.Postgres)
	sq = dialect.MustNew(dialect.SQLite)
)

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		d      dialect.Dialect
		f      sqlforge.Filter
		sql    string
		params int
		next   int
	}{
		{
			d:    pg,
			f:    sqlforge.Filter{Field: "deleted_at", Op: sqlforge.OpEQ, Value: sqlforge.Null()},
			sql:  "deleted_at IS NULL",
			next: 1,
		},
		{
			d:    pg,
			f:    sqlforge.Filter{Field: "email", Op: sqlforge.OpNEQ, Value: sqlforge.Null()},
			sql:  "email IS NOT NULL",
			next: 1,
		},
		{
			d:      pg,
			f:      sqlforge.Filter{Field: "age", Op: sqlforge.OpGTE, Value: sqlforge.Int(18)},
			sql:    "age >= $1",
			params: 1,
			next:   2,
		},
		{
			d:      sq,
			f:      sqlforge.Filter{Field: "age", Op: sqlforge.OpLT, Value: sqlforge.Int(65)},
			sql:    "age < ?1",
			params: 1,
			next:   2,
		},
		{
			d:      pg,
			f:      sqlforge.Filter{Field: "status", Op: sqlforge.OpNEQ, Value: sqlforge.String("deleted")},
			sql:    "status <> $1",
			params: 1,
			next:   2,
		},
		{
			d:      pg,
			f:      sqlforge.Filter{Field: "name", Op: sqlforge.OpLike, Value: sqlforge.String("%a8m%")},
			sql:    "name LIKE $1",
			params: 1,
			next:   2,
		},
		{
			d:      pg,
			f:      sqlforge.Filter{Field: "name", Op: sqlforge.OpILike, Value: sqlforge.String("a8m")},
			sql:    "name ILIKE $1",
			params: 1,
			next:   2,
		},
		{
			// No native ILIKE on SQLite; falls back to LIKE.
			d:      sq,
			f:      sqlforge.Filter{Field: "name", Op: sqlforge.OpILike, Value: sqlforge.String("a8m")},
			sql:    "name LIKE ?1",
			params: 1,
			next:   2,
		},
		{
			d:      pg,
			f:      sqlforge.Filter{Field: "name", Op: sqlforge.OpRegex, Value: sqlforge.String("^a.*m$")},
			sql:    "name ~ $1",
			params: 1,
			next:   2,
		},
		{
			// No native regex on SQLite; falls back to LIKE.
			d:      sq,
			f:      sqlforge.Filter{Field: "name", Op: sqlforge.OpRegex, Value: sqlforge.String("^a.*m$")},
			sql:    "name LIKE ?1",
			params: 1,
			next:   2,
		},
		{
			d:      pg,
			f:      sqlforge.Filter{Field: "name", Op: sqlforge.OpHasPrefix, Value: sqlforge.String("a")},
			sql:    "name LIKE $1 || '%'",
			params: 1,
			next:   2,
		},
		{
			d:      sq,
			f:      sqlforge.Filter{Field: "name", Op: sqlforge.OpHasSuffix, Value: sqlforge.String("m")},
			sql:    "name LIKE '%' || ?1",
			params: 1,
			next:   2,
		},
		{
			d:      pg,
			f:      sqlforge.Filter{Field: "name", Op: sqlforge.OpContains, Value: sqlforge.String("8")},
			sql:    "name LIKE '%' || $1 || '%'",
			params: 1,
			next:   2,
		},
		{
			d:      pg,
			f:      sqlforge.Filter{Field: "age", Op: sqlforge.OpBetween, Value: sqlforge.Array(sqlforge.Int(18), sqlforge.Int(65))},
			sql:    "age BETWEEN $1 AND $2",
			params: 2,
			next:   3,
		},
	}
	for i := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			sql, params, next := sqlbuild.CompileFilter(tests[i].f, tests[i].d, 1)
			assert.Equal(t, tests[i].sql, sql)
			assert.Len(t, params, tests[i].params)
			assert.Equal(t, tests[i].next, next)
		})
	}
}

func TestCompileMembership(t *testing.T) {
	in := sqlforge.Filter{
		Field: "status",
		Op:    sqlforge.OpIn,
		Value: sqlforge.Array(sqlforge.String("a"), sqlforge.String("b")),
	}

	// Postgres: single array parameter, index advances by one.
	sql, params, next := sqlbuild.CompileFilter(in, pg, 1)
	assert.Equal(t, "status = ANY($1)", sql)
	require.Len(t, params, 1)
	assert.Equal(t, 2, next)

	// SQLite: one placeholder per element.
	sql, params, next = sqlbuild.CompileFilter(in, sq, 1)
	assert.Equal(t, "status IN (?1, ?2)", sql)
	assert.Len(t, params, 2)
	assert.Equal(t, 3, next)

	// A scalar operand is treated as a one-element list.
	scalar := sqlforge.Filter{Field: "status", Op: sqlforge.OpIn, Value: sqlforge.String("a")}
	sql, params, next = sqlbuild.CompileFilter(scalar, sq, 1)
	assert.Equal(t, "status IN (?1)", sql)
	assert.Len(t, params, 1)
	assert.Equal(t, 2, next)

	notIn := sqlforge.Filter{
		Field: "role",
		Op:    sqlforge.OpNotIn,
		Value: sqlforge.Array(sqlforge.String("admin")),
	}
	sql, params, next = sqlbuild.CompileFilter(notIn, pg, 5)
	assert.Equal(t, "role != ALL($5)", sql)
	assert.Len(t, params, 1)
	assert.Equal(t, 6, next)
}

func TestCompileBetweenBadArity(t *testing.T) {
	for _, d := range []dialect.Dialect{pg, sq} {
		t.Run(d.Name(), func(t *testing.T) {
			f := sqlforge.Filter{Field: "age", Op: sqlforge.OpBetween, Value: sqlforge.Array(sqlforge.Int(18))}
			sql, params, next := sqlbuild.CompileFilter(f, d, 1)
			assert.Contains(t, sql, "1=0")
			assert.Empty(t, params)
			assert.Equal(t, 1, next)

			// Non-array operands fail closed the same way.
			f = sqlforge.Filter{Field: "age", Op: sqlforge.OpBetween, Value: sqlforge.Int(18)}
			sql, params, _ = sqlbuild.CompileFilter(f, d, 1)
			assert.Contains(t, sql, "1=0")
			assert.Empty(t, params)
		})
	}
}

func TestCompileExprCompound(t *testing.T) {
	x := sqlforge.And(
		sqlforge.Simple("status", sqlforge.OpEQ, sqlforge.String("active")),
		sqlforge.Or(
			sqlforge.Simple("age", sqlforge.OpGT, sqlforge.Int(18)),
			sqlforge.Simple("role", sqlforge.OpEQ, sqlforge.String("admin")),
		),
	)
	sql, params, next := sqlbuild.CompileExpr(x, pg, 1)
	assert.Equal(t, "(status = $1 AND (age > $2 OR role = $3))", sql)
	assert.Len(t, params, 3)
	assert.Equal(t, 4, next)
}

func TestCompileExprNot(t *testing.T) {
	x := sqlforge.Not(sqlforge.Simple("name", sqlforge.OpEQ, sqlforge.String("a8m")))
	sql, params, next := sqlbuild.CompileExpr(x, pg, 1)
	assert.Equal(t, "NOT (name = $1)", sql)
	assert.Len(t, params, 1)
	assert.Equal(t, 2, next)
}

func TestCompileExprSingleChildUnwrapped(t *testing.T) {
	x := sqlforge.And(sqlforge.Simple("age", sqlforge.OpGT, sqlforge.Int(18)))
	sql, _, _ := sqlbuild.CompileExpr(x, pg, 1)
	assert.Equal(t, "age > $1", sql)
}

func TestCompileExprDegenerate(t *testing.T) {
	sql, params, next := sqlbuild.CompileExpr(&sqlforge.CompoundExpr{Op: sqlforge.LogicAnd}, pg, 1)
	assert.Equal(t, "()", sql)
	assert.Empty(t, params)
	assert.Equal(t, 1, next)

	sql, _, _ = sqlbuild.CompileExpr(&sqlforge.CompoundExpr{Op: sqlforge.LogicOr}, pg, 1)
	assert.Equal(t, "()", sql)

	sql, _, _ = sqlbuild.CompileExpr(&sqlforge.CompoundExpr{Op: sqlforge.LogicNot}, pg, 1)
	assert.Equal(t, "NOT ()", sql)
}

var placeholderRe = regexp.MustCompile(`[$?](\d+)`)

// Placeholder numbers must form the contiguous range [start, start+len-1]
// and match the parameter count, for any starting index.
func TestPlaceholderContiguity(t *testing.T) {
	x := sqlforge.And(
		sqlforge.Simple("status", sqlforge.OpIn, sqlforge.Array(sqlforge.String("a"), sqlforge.String("b"), sqlforge.String("c"))),
		sqlforge.Simple("age", sqlforge.OpBetween, sqlforge.Array(sqlforge.Int(18), sqlforge.Int(65))),
		sqlforge.Not(sqlforge.Simple("name", sqlforge.OpHasPrefix, sqlforge.String("a"))),
		sqlforge.Simple("email", sqlforge.OpNEQ, sqlforge.Null()),
	)
	for _, d := range []dialect.Dialect{pg, sq} {
		for _, start := range []int{1, 7} {
			sql, params, next := sqlbuild.CompileExpr(x, d, start)
			matches := placeholderRe.FindAllStringSubmatch(sql, -1)
			require.Len(t, matches, len(params), "dialect %s start %d: %s", d.Name(), start, sql)
			assert.Equal(t, start+len(params), next)
			for i, m := range matches {
				n, err := strconv.Atoi(m[1])
				require.NoError(t, err)
				assert.Equal(t, start+i, n, "dialect %s start %d: %s", d.Name(), start, sql)
			}
		}
	}
}

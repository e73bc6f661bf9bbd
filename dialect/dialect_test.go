package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlforge"
	"github.com/syssam/sqlforge/dialect"
)

func TestNew(t *testing.T) {
	for _, name := range []string{dialect.Postgres, dialect.SQLite} {
		d, err := dialect.New(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.Name())
	}
	_, err := dialect.New("mysql")
	require.Error(t, err)
	assert.Panics(t, func() { dialect.MustNew("oracle") })
}

func TestPlaceholders(t *testing.T) {
	pg := dialect.MustNew(dialect.Postgres)
	sq := dialect.MustNew(dialect.SQLite)
	assert.Equal(t, "$1", pg.Param(1))
	assert.Equal(t, "$42", pg.Param(42))
	assert.Equal(t, "?1", sq.Param(1))
	assert.Equal(t, "?42", sq.Param(42))
}

func TestBoolLit(t *testing.T) {
	pg := dialect.MustNew(dialect.Postgres)
	sq := dialect.MustNew(dialect.SQLite)
	assert.Equal(t, "TRUE", pg.BoolLit(true))
	assert.Equal(t, "FALSE", pg.BoolLit(false))
	assert.Equal(t, "1", sq.BoolLit(true))
	assert.Equal(t, "0", sq.BoolLit(false))
}

func TestCapabilities(t *testing.T) {
	pg := dialect.MustNew(dialect.Postgres)
	sq := dialect.MustNew(dialect.SQLite)
	assert.True(t, pg.SupportsILike())
	assert.False(t, sq.SupportsILike())
	assert.Equal(t, "~", pg.RegexOp())
	assert.Equal(t, "LIKE", sq.RegexOp())
}

func TestInClause(t *testing.T) {
	values := []sqlforge.Value{sqlforge.String("a"), sqlforge.String("b"), sqlforge.String("c")}

	t.Run("postgres", func(t *testing.T) {
		pg := dialect.MustNew(dialect.Postgres)
		sql, params := pg.InClause("status", values, 3)
		assert.Equal(t, "status = ANY($3)", sql)
		require.Len(t, params, 1)
		assert.Equal(t, sqlforge.KindArray, params[0].Kind())

		sql, params = pg.NotInClause("status", values, 1)
		assert.Equal(t, "status != ALL($1)", sql)
		assert.Len(t, params, 1)
	})

	t.Run("sqlite", func(t *testing.T) {
		sq := dialect.MustNew(dialect.SQLite)
		sql, params := sq.InClause("status", values, 3)
		assert.Equal(t, "status IN (?3, ?4, ?5)", sql)
		assert.Len(t, params, 3)

		sql, params = sq.NotInClause("status", values, 1)
		assert.Equal(t, "status NOT IN (?1, ?2, ?3)", sql)
		assert.Len(t, params, 3)
	})
}

func TestInClauseEmpty(t *testing.T) {
	sq := dialect.MustNew(dialect.SQLite)
	sql, params := sq.InClause("status", nil, 1)
	assert.Equal(t, "0", sql)
	assert.Empty(t, params)

	sql, params = sq.NotInClause("status", nil, 1)
	assert.Equal(t, "1", sql)
	assert.Empty(t, params)

	// Postgres binds an empty array instead; ANY over it matches nothing.
	pg := dialect.MustNew(dialect.Postgres)
	sql, params = pg.InClause("status", nil, 1)
	assert.Equal(t, "status = ANY($1)", sql)
	assert.Len(t, params, 1)
}

func TestPatternClauses(t *testing.T) {
	pg := dialect.MustNew(dialect.Postgres)
	sq := dialect.MustNew(dialect.SQLite)
	assert.Equal(t, "name LIKE $2 || '%'", pg.HasPrefixClause("name", 2))
	assert.Equal(t, "name LIKE '%' || $2", pg.HasSuffixClause("name", 2))
	assert.Equal(t, "name LIKE '%' || $2 || '%'", pg.ContainsClause("name", 2))
	assert.Equal(t, "name LIKE ?2 || '%'", sq.HasPrefixClause("name", 2))
	assert.Equal(t, "name LIKE '%' || ?2", sq.HasSuffixClause("name", 2))
	assert.Equal(t, "name LIKE '%' || ?2 || '%'", sq.ContainsClause("name", 2))
}

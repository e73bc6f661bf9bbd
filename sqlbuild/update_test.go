package sqlbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlforge"
	"github.com/syssam/sqlforge/sqlbuild"
)

func TestUpdate(t *testing.T) {
	res := sqlbuild.Update(pg, "users").
		Set("name", sqlforge.String("a8m")).
		Set("age", sqlforge.Int(31)).
		Where("id", sqlforge.OpEQ, sqlforge.Int(1)).
		Returning("updated_at").
		Build()
	assert.Equal(t, "UPDATE users SET name = $1, age = $2 WHERE id = $3 RETURNING updated_at", res.SQL)
	require.Len(t, res.Params, 3)
	// SET assignments consume indexes before the WHERE clause.
	assert.True(t, sqlforge.String("a8m").Equal(res.Params[0]))
	assert.True(t, sqlforge.Int(31).Equal(res.Params[1]))
	assert.True(t, sqlforge.Int(1).Equal(res.Params[2]))
}

func TestUpdateNoWhere(t *testing.T) {
	res := sqlbuild.Update(sq, "users").Set("active", sqlforge.Bool(false)).Build()
	assert.Equal(t, "UPDATE users SET active = ?1", res.SQL)
	assert.Len(t, res.Params, 1)
}

func TestUpdateCompoundWhere(t *testing.T) {
	res := sqlbuild.Update(sq, "users").
		Set("status", sqlforge.String("archived")).
		WhereExpr(sqlforge.Or(
			sqlforge.Simple("last_seen", sqlforge.OpLT, sqlforge.String("2023-01-01")),
			sqlforge.Simple("deleted_at", sqlforge.OpNEQ, sqlforge.Null()),
		)).
		Build()
	assert.Equal(t,
		"UPDATE users SET status = ?1 WHERE (last_seen < ?2 OR deleted_at IS NOT NULL)",
		res.SQL,
	)
	assert.Len(t, res.Params, 2)
}

func TestUpdatePanics(t *testing.T) {
	assert.Panics(t, func() { sqlbuild.Update(pg, "users").Set("bad col", sqlforge.Int(1)) })
	assert.Panics(t, func() { sqlbuild.Update(pg, "users").Build() }) // no Set
	b := sqlbuild.Update(pg, "users").Set("a", sqlforge.Int(1))
	b.Build()
	assert.Panics(t, func() { b.Build() })
}

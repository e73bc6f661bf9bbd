package sqlbuild_test

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/syssam/sqlforge"
	"github.com/syssam/sqlforge/sqlbuild"
)

// TestBuildAgainstSQLMock verifies that a built statement and its Args
// bind through database/sql exactly as generated.
func TestBuildAgainstSQLMock(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	res := sqlbuild.Select(pg, "users").
		Fields("id", "name").
		Where("active", sqlforge.OpEQ, sqlforge.Bool(true)).
		Where("age", sqlforge.OpGTE, sqlforge.Int(18)).
		OrderBy(sqlforge.Asc("id")).
		Limit(2).
		Build()
	mock.ExpectQuery(res.SQL).
		WithArgs(true, int64(18)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "a8m").AddRow(2, "nati"))

	rows, err := db.Query(res.SQL, res.Args()...)
	require.NoError(t, err)
	var names []string
	for rows.Next() {
		var (
			id   int64
			name string
		)
		require.NoError(t, rows.Scan(&id, &name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	require.NoError(t, rows.Close())
	assert.Equal(t, []string{"a8m", "nati"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSQLiteRoundtrip runs built statements against an in-memory SQLite
// database end to end.
func TestSQLiteRoundtrip(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec("CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, age INTEGER, active BOOLEAN)")
	require.NoError(t, err)

	ins := sqlbuild.Insert(sq, "users").
		Columns("name", "age", "active").
		Values(sqlforge.String("ariel"), sqlforge.Int(30), sqlforge.Bool(true)).
		Values(sqlforge.String("alex"), sqlforge.Int(17), sqlforge.Bool(true)).
		Values(sqlforge.String("nati"), sqlforge.Int(28), sqlforge.Bool(false)).
		Build()
	_, err = db.Exec(ins.SQL, ins.Args()...)
	require.NoError(t, err)

	// Adults whose name starts with "a", using the expanded IN form for
	// the active flag and a prefix match.
	sel := sqlbuild.Select(sq, "users").
		Fields("name").
		Where("age", sqlforge.OpGTE, sqlforge.Int(18)).
		WhereExpr(sqlforge.Simple("name", sqlforge.OpHasPrefix, sqlforge.String("a"))).
		WhereExpr(sqlforge.Simple("active", sqlforge.OpIn, sqlforge.Array(sqlforge.Bool(true), sqlforge.Bool(false)))).
		OrderBy(sqlforge.Asc("name")).
		Build()
	rows, err := db.Query(sel.SQL, sel.Args()...)
	require.NoError(t, err)
	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	require.NoError(t, rows.Close())
	assert.Equal(t, []string{"ariel"}, names)

	upd := sqlbuild.Update(sq, "users").
		Set("active", sqlforge.Bool(false)).
		Where("name", sqlforge.OpEQ, sqlforge.String("ariel")).
		Build()
	r, err := db.Exec(upd.SQL, upd.Args()...)
	require.NoError(t, err)
	n, err := r.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	del := sqlbuild.Delete(sq, "users").
		WhereExpr(sqlforge.Simple("name", sqlforge.OpIn, sqlforge.Array(
			sqlforge.String("ariel"), sqlforge.String("alex"),
		))).
		Build()
	r, err = db.Exec(del.SQL, del.Args()...)
	require.NoError(t, err)
	n, err = r.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

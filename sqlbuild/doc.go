// Package sqlbuild compiles filter trees and assembles parameterized
// SQL statements for the two supported dialects.
//
// The package provides four fluent builders:
//
//	d := dialect.MustNew(dialect.Postgres)
//
//	res := sqlbuild.Select(d, "users").
//	    Fields("id", "name").
//	    Where("active", sqlforge.OpEQ, sqlforge.Bool(true)).
//	    OrderBy(sqlforge.Asc("id")).
//	    Limit(10).
//	    Build()
//	// res.SQL    = SELECT id, name FROM users WHERE active = $1 ORDER BY id ASC LIMIT 10
//	// res.Params = [true]
//
//	sqlbuild.Insert(d, "users").Columns("id", "name").
//	    Values(sqlforge.Int(1), sqlforge.String("a8m")).
//	    Returning("id").Build()
//
//	sqlbuild.Update(d, "users").Set("name", sqlforge.String("a8m")).
//	    Where("id", sqlforge.OpEQ, sqlforge.Int(1)).Build()
//
//	sqlbuild.Delete(d, "users").
//	    Where("id", sqlforge.OpEQ, sqlforge.Int(1)).Build()
//
// Builders validate table, column and alias identifiers eagerly at
// configuration time and panic on violations: an invalid identifier
// from trusted code is a defect in the caller, not recoverable input.
// Build is terminal; a builder panics if used again afterward, so a
// built QueryResult always reflects a complete, frozen configuration.
//
// The filter condition compiler is exported separately as CompileExpr
// and CompileFilter for callers that assemble WHERE fragments
// themselves. Compilation never string-interpolates values: every value
// becomes a numbered placeholder and an entry in the parameter list,
// and each clause continues the running parameter index of the clause
// before it.
//
// Untrusted filter trees (from filterql.Parse) must pass a
// filterql.Validator before being handed to WhereExpr; the builders do
// not re-validate field names inside filter expressions.
package sqlbuild

// Package sqlforge provides the core data model for building parameterized
// SQL statements: typed parameter values, comparison operators, and
// recursive filter expression trees.
//
// This package is the foundation consumed by the statement builders in
// sqlbuild, the database dialects in dialect, the cursor pagination
// helpers in pagination, and the untrusted-filter tooling in filterql.
// It contains pure data with construction helpers and performs no
// validation on its own; validation is an explicit, separate step.
//
// # Values
//
// A Value is a tagged union over the types a statement parameter can
// carry:
//
//	sqlforge.Null()
//	sqlforge.Bool(true)
//	sqlforge.Int(42)
//	sqlforge.Float(3.14)
//	sqlforge.String("a8m")
//	sqlforge.Array(sqlforge.Int(1), sqlforge.Int(2))
//
// ValueOf converts native Go values, including uuid.UUID and time.Time:
//
//	v, err := sqlforge.ValueOf(time.Now()) // RFC 3339 string value
//
// # Filters
//
// Filter trees combine field comparisons with And/Or/Not:
//
//	sqlforge.And(
//	    sqlforge.Simple("status", sqlforge.OpEQ, sqlforge.String("active")),
//	    sqlforge.Or(
//	        sqlforge.Simple("age", sqlforge.OpGT, sqlforge.Int(18)),
//	        sqlforge.Simple("role", sqlforge.OpEQ, sqlforge.String("admin")),
//	    ),
//	)
//
// Field names embedded in trusted filters must be valid SQL identifiers;
// the builders in sqlbuild enforce this at configuration time. Filter
// trees decoded from untrusted input must pass a filterql.Validator
// before they may influence generated SQL.
//
// # Results
//
// A QueryResult pairs the generated statement text with its ordered
// parameter list. Every positional placeholder in the SQL corresponds,
// in order, to one entry in Params. Nothing in this module executes
// statements; handing the result to a database driver is the caller's
// concern.
package sqlforge

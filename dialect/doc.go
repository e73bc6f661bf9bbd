// Package dialect abstracts the SQL syntax differences between the two
// supported database engines.
//
// A Dialect is a pure capability interface: placeholder syntax, boolean
// literals, the regular-expression match operator, IN/NOT IN clause
// shape, and the pattern-match clauses for prefix/suffix/substring
// tests. There are two independent implementations, selected by name:
//
//	d, err := dialect.New(dialect.Postgres)
//	d, err := dialect.New(dialect.SQLite)
//
// # Placeholders
//
// Postgres numbers placeholders $1, $2, ...; SQLite uses ?1, ?2, ....
// Parameter indexes are 1-based and every clause continues the running
// index of the clause before it.
//
// # IN clauses
//
// Postgres compiles IN/NOT IN to "col = ANY($1)" / "col != ALL($1)"
// with the whole array bound as a single parameter. SQLite expands the
// list to one placeholder per element: "col IN (?1, ?2, ?3)".
//
// # Known behavioral gaps
//
// SQLite has no native case-insensitive match operator and no native
// regular-expression operator; both ILIKE and regex comparisons fall
// back to an ordinary LIKE. Callers relying on regex anchors or
// character classes will get materially different results on SQLite.
// This fallback is deliberate and not flagged at runtime.
package dialect

package sqlforge

import "github.com/lib/pq"

// dialectPostgres mirrors dialect.Postgres; result.go cannot import the
// dialect package without creating a cycle.
const dialectPostgres = "postgres"

// QueryResult is the sole output of a builder's terminal Build call:
// the generated statement text and its ordered parameter list. Every
// positional placeholder in SQL corresponds 1:1, in order, to an entry
// in Params. The result is immutable.
type QueryResult struct {
	SQL     string
	Params  []Value
	Dialect string
}

// Args converts the parameter list to driver arguments for database/sql.
// Under the Postgres dialect, array parameters are wrapped with pq.Array
// so that "col = ANY($1)" binds the whole array as a single parameter.
func (r QueryResult) Args() []any {
	args := make([]any, len(r.Params))
	for i, p := range r.Params {
		if r.Dialect == dialectPostgres && p.Kind() == KindArray {
			args[i] = pq.Array(p.Driver().([]any))
			continue
		}
		args[i] = p.Driver()
	}
	return args
}

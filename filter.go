package sqlforge

// Filter is a single field comparison. The field must be a valid SQL
// identifier before it may be embedded in generated SQL; the trusted
// builder API enforces this at configuration time, while filters
// produced by the untrusted parser must pass a filterql.Validator
// explicitly.
type Filter struct {
	Field string
	Op    Op
	Value Value
}

// FilterExpr is a recursive filter expression tree: either a single
// comparison (*SimpleExpr) or a logical combination of sub-expressions
// (*CompoundExpr). Depth is unbounded in the type and bounded by
// validators when the source is untrusted.
type FilterExpr interface {
	isFilterExpr()
}

// SimpleExpr wraps a single comparison.
type SimpleExpr struct {
	Filter Filter
}

// CompoundExpr combines sub-expressions with a logical connective.
// For LogicNot, Exprs holds the single negated expression.
type CompoundExpr struct {
	Op    LogicOp
	Exprs []FilterExpr
}

func (*SimpleExpr) isFilterExpr()   {}
func (*CompoundExpr) isFilterExpr() {}

// Simple returns a single-comparison expression.
func Simple(field string, op Op, v Value) FilterExpr {
	return &SimpleExpr{Filter: Filter{Field: field, Op: op, Value: v}}
}

// And combines expressions with AND.
func And(exprs ...FilterExpr) FilterExpr {
	return &CompoundExpr{Op: LogicAnd, Exprs: exprs}
}

// Or combines expressions with OR.
func Or(exprs ...FilterExpr) FilterExpr {
	return &CompoundExpr{Op: LogicOr, Exprs: exprs}
}

// Not negates an expression.
func Not(x FilterExpr) FilterExpr {
	return &CompoundExpr{Op: LogicNot, Exprs: []FilterExpr{x}}
}

// Order is a sort direction.
type Order uint8

// Sort directions.
const (
	OrderAsc Order = iota
	OrderDesc
)

// String returns the SQL keyword for the direction.
func (o Order) String() string {
	if o == OrderDesc {
		return "DESC"
	}
	return "ASC"
}

// SortField pairs a column with a sort direction.
type SortField struct {
	Field string
	Order Order
}

// Asc returns an ascending sort on the given field.
func Asc(field string) SortField { return SortField{Field: field, Order: OrderAsc} }

// Desc returns a descending sort on the given field.
func Desc(field string) SortField { return SortField{Field: field, Order: OrderDesc} }

// AggregateFunc is an aggregate function selector.
type AggregateFunc uint8

// The supported aggregate functions.
const (
	AggCount AggregateFunc = iota
	AggCountDistinct
	AggSum
	AggAvg
	AggMin
	AggMax
)

// Aggregate describes an aggregate term in a SELECT list. Field is
// optional for AggCount ("*" semantics); Alias is optional.
type Aggregate struct {
	Fn    AggregateFunc
	Field string
	Alias string
}

// Count returns a COUNT(*) aggregate.
func Count() Aggregate { return Aggregate{Fn: AggCount} }

// CountDistinct returns a COUNT(DISTINCT field) aggregate.
func CountDistinct(field string) Aggregate {
	return Aggregate{Fn: AggCountDistinct, Field: field}
}

// Sum returns a SUM(field) aggregate.
func Sum(field string) Aggregate { return Aggregate{Fn: AggSum, Field: field} }

// Avg returns an AVG(field) aggregate.
func Avg(field string) Aggregate { return Aggregate{Fn: AggAvg, Field: field} }

// Min returns a MIN(field) aggregate.
func Min(field string) Aggregate { return Aggregate{Fn: AggMin, Field: field} }

// Max returns a MAX(field) aggregate.
func Max(field string) Aggregate { return Aggregate{Fn: AggMax, Field: field} }

// As returns a copy of the aggregate with the given alias.
func (a Aggregate) As(alias string) Aggregate {
	a.Alias = alias
	return a
}

// ComputedField is a raw SQL expression selected under an alias. The
// expression must pass sqlbuild.ValidateExpr before it may be embedded
// in generated SQL; the select builder enforces this at configuration
// time.
type ComputedField struct {
	Alias string
	Expr  string
}

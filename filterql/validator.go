package filterql

import (
	"github.com/syssam/sqlforge"
)

// Validator limits for untrusted filter trees.
const (
	DefaultMaxDepth = 5
	DefaultMaxNodes = 10000
)

// Validator checks untrusted filter trees against a field whitelist, an
// operator denylist, and depth/size limits. The zero limits are never
// used; NewValidator fills in defaults.
type Validator struct {
	allowed  map[string]struct{}
	denied   map[sqlforge.Op]struct{}
	maxDepth int
	maxNodes int
}

// Option configures a Validator.
type Option func(*Validator)

// AllowFields whitelists the given fields. An empty whitelist allows
// all fields.
func AllowFields(fields ...string) Option {
	return func(v *Validator) {
		if v.allowed == nil {
			v.allowed = make(map[string]struct{}, len(fields))
		}
		for _, f := range fields {
			v.allowed[f] = struct{}{}
		}
	}
}

// DenyOps adds operators to the denylist.
func DenyOps(ops ...sqlforge.Op) Option {
	return func(v *Validator) {
		for _, op := range ops {
			v.denied[op] = struct{}{}
		}
	}
}

// AllowOps removes operators from the denylist, e.g. to explicitly
// permit regex filters.
func AllowOps(ops ...sqlforge.Op) Option {
	return func(v *Validator) {
		for _, op := range ops {
			delete(v.denied, op)
		}
	}
}

// MaxDepth overrides the nesting depth limit.
func MaxDepth(n int) Option {
	return func(v *Validator) { v.maxDepth = n }
}

// MaxNodes overrides the visited-node cap.
func MaxNodes(n int) Option {
	return func(v *Validator) { v.maxNodes = n }
}

// NewValidator returns a validator with the default policy: all fields
// allowed, the regex operator denied (catastrophic-backtracking
// defense), depth limited to DefaultMaxDepth and visited nodes capped
// at DefaultMaxNodes.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		denied:   map[sqlforge.Op]struct{}{sqlforge.OpRegex: {}},
		maxDepth: DefaultMaxDepth,
		maxNodes: DefaultMaxNodes,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate walks the tree, recursing into array values, and returns a
// typed error for the first violation. The node cap bounds the cost of
// validation itself; exceeding it is a distinct error from exceeding
// the depth limit.
func (v *Validator) Validate(x sqlforge.FilterExpr) error {
	if x == nil {
		return nil
	}
	nodes := 0
	return v.validateExpr(x, 1, &nodes)
}

func (v *Validator) validateExpr(x sqlforge.FilterExpr, depth int, nodes *int) error {
	if depth > v.maxDepth {
		return validationErr(ErrNestingTooDeep, "")
	}
	if err := v.count(nodes); err != nil {
		return err
	}
	switch x := x.(type) {
	case *sqlforge.SimpleExpr:
		return v.validateFilter(x.Filter, depth, nodes)
	case *sqlforge.CompoundExpr:
		for _, child := range x.Exprs {
			if child == nil {
				continue
			}
			if err := v.validateExpr(child, depth+1, nodes); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func (v *Validator) validateFilter(f sqlforge.Filter, depth int, nodes *int) error {
	if len(v.allowed) > 0 {
		if _, ok := v.allowed[f.Field]; !ok {
			return validationErr(ErrFieldNotAllowed, f.Field)
		}
	}
	if _, ok := v.denied[f.Op]; ok {
		return validationErr(ErrOperatorDenied, f.Op.String())
	}
	return v.validateValue(f.Value, depth, nodes)
}

func (v *Validator) validateValue(val sqlforge.Value, depth int, nodes *int) error {
	if err := v.count(nodes); err != nil {
		return err
	}
	if val.Kind() != sqlforge.KindArray {
		return nil
	}
	if depth+1 > v.maxDepth {
		return validationErr(ErrNestingTooDeep, "")
	}
	for _, e := range val.Elems() {
		if err := v.validateValue(e, depth+1, nodes); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) count(nodes *int) error {
	*nodes++
	if *nodes > v.maxNodes {
		return validationErr(ErrTooManyNodes, "")
	}
	return nil
}

// MergeFilters concatenates trusted, server-constructed filters with
// validated user filters into one AND-joined expression, trusted
// filters always listed first. It returns nil when both lists are
// empty.
func MergeFilters(trusted, user []sqlforge.FilterExpr) sqlforge.FilterExpr {
	merged := make([]sqlforge.FilterExpr, 0, len(trusted)+len(user))
	for _, x := range trusted {
		if x != nil {
			merged = append(merged, x)
		}
	}
	for _, x := range user {
		if x != nil {
			merged = append(merged, x)
		}
	}
	switch len(merged) {
	case 0:
		return nil
	case 1:
		return merged[0]
	default:
		return sqlforge.And(merged...)
	}
}

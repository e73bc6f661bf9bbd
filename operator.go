package sqlforge

import "fmt"

// Op is a field comparison operator. The set is closed; the compiler
// and validators exhaustively handle every variant.
type Op uint8

// The closed set of comparison operators.
const (
	OpEQ Op = iota
	OpNEQ
	OpGT
	OpGTE
	OpLT
	OpLTE
	OpIn
	OpNotIn
	OpLike
	OpILike
	OpRegex
	OpHasPrefix
	OpHasSuffix
	OpContains
	OpBetween
)

var opNames = [...]string{
	OpEQ:        "eq",
	OpNEQ:       "ne",
	OpGT:        "gt",
	OpGTE:       "gte",
	OpLT:        "lt",
	OpLTE:       "lte",
	OpIn:        "in",
	OpNotIn:     "nin",
	OpLike:      "like",
	OpILike:     "ilike",
	OpRegex:     "regex",
	OpHasPrefix: "startsWith",
	OpHasSuffix: "endsWith",
	OpContains:  "contains",
	OpBetween:   "between",
}

// String returns the operator name as used by filterql sigils and
// validation policies.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("op(%d)", op)
}

// OpFromName returns the operator with the given name, as produced by
// Op.String.
func OpFromName(name string) (Op, bool) {
	for op, n := range opNames {
		if n == name {
			return Op(op), true
		}
	}
	return 0, false
}

// SQL returns the operator's plain SQL comparison text, or the empty
// string for operators that have no single-token form and are rendered
// by the compiler or the dialect instead.
func (op Op) SQL() string {
	switch op {
	case OpEQ:
		return "="
	case OpNEQ:
		return "<>"
	case OpGT:
		return ">"
	case OpGTE:
		return ">="
	case OpLT:
		return "<"
	case OpLTE:
		return "<="
	case OpLike:
		return "LIKE"
	default:
		return ""
	}
}

// LogicOp combines filter expressions.
type LogicOp uint8

// The logical connectives.
const (
	LogicAnd LogicOp = iota
	LogicOr
	LogicNot
)

// String returns the SQL keyword for the connective.
func (op LogicOp) String() string {
	switch op {
	case LogicAnd:
		return "AND"
	case LogicOr:
		return "OR"
	case LogicNot:
		return "NOT"
	default:
		return fmt.Sprintf("logic(%d)", op)
	}
}

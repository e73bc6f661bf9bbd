// Package filterql decodes untrusted, runtime-supplied filter trees and
// validates them against field and operator whitelists before they may
// influence generated SQL.
//
// # Grammar
//
// Parse accepts a generic JSON-like value, typically the result of
// unmarshaling a request body. The top level must be an object. Keys
// starting with a logical sigil combine conditions:
//
//	{"$and": [ {...}, {...} ]}
//	{"$or":  [ {...}, {...} ]}
//	{"$not": {...}}
//
// Other keys are field names. A scalar operand means equality, an array
// operand means membership, and a single-key object selects an explicit
// operator:
//
//	{"age": {"$gte": 18}, "status": {"$in": ["a", "b"]}}
//
// parses to And(age >= 18, status IN (a, b)). Multiple keys in one
// object are AND-combined; keys are processed in sorted order so the
// same input always produces the same tree. The operator sigils are "$"
// followed by an operator name: $eq $ne $gt $gte $lt $lte $in $nin
// $like $ilike $regex $startsWith $endsWith $contains $between. In,
// NotIn and Between require array operands, Between exactly two
// elements.
//
// Every failure mode has a distinct sentinel matchable with errors.Is
// (ErrUnknownOperator, ErrExpectedArray, ...), wrapped in a *ParseError
// carrying the path to the offending node.
//
// # Validation
//
// Parse performs no field or operator policy checks; a parsed tree is
// still untrusted. Run a Validator before compiling it:
//
//	v := filterql.NewValidator(filterql.AllowFields("age", "status"))
//	if err := v.Validate(expr); err != nil { ... }
//
// The default validator denies the regex operator (catastrophic
// backtracking defense), limits nesting depth to 5 and caps the total
// number of visited nodes at 10000 so that validation cost itself stays
// bounded. Policies may also be loaded from YAML with PolicyFromYAML.
//
// MergeFilters concatenates server-constructed filters with validated
// user filters, trusted filters always first.
package filterql

package filterql

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/syssam/sqlforge"
)

// Logical operator sigils.
const (
	sigilAnd = "$and"
	sigilOr  = "$or"
	sigilNot = "$not"
)

// Parse decodes an untrusted JSON-like value into a filter expression
// tree. The result is structurally valid but still untrusted: run a
// Validator before compiling it into SQL.
func Parse(src any) (sqlforge.FilterExpr, error) {
	if !jsonLike(src) {
		return nil, parseErr(ErrInvalidSource, "$")
	}
	obj, ok := src.(map[string]any)
	if !ok {
		return nil, parseErr(ErrExpectedObject, "$")
	}
	children, err := parseObject(obj, "$")
	if err != nil {
		return nil, err
	}
	return combine(children), nil
}

// jsonLike reports whether v is representable in a decoded JSON tree.
func jsonLike(v any) bool {
	switch v.(type) {
	case nil, bool, string, float64, int, int64, json.Number, []any, map[string]any:
		return true
	default:
		return false
	}
}

// parseObject decodes one filter object into its condition list. Keys
// are processed in sorted order so identical inputs always produce
// identical trees.
func parseObject(obj map[string]any, path string) ([]sqlforge.FilterExpr, error) {
	if len(obj) == 0 {
		return nil, parseErr(ErrEmptyFilter, path)
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	exprs := make([]sqlforge.FilterExpr, 0, len(keys))
	for _, k := range keys {
		kpath := path + "." + k
		var (
			expr sqlforge.FilterExpr
			err  error
		)
		switch {
		case k == sigilAnd:
			expr, err = parseCompound(sqlforge.LogicAnd, obj[k], kpath)
		case k == sigilOr:
			expr, err = parseCompound(sqlforge.LogicOr, obj[k], kpath)
		case k == sigilNot:
			expr, err = parseNot(obj[k], kpath)
		case strings.HasPrefix(k, "$"):
			err = parseErr(ErrUnknownOperator, kpath)
		case k == "":
			err = parseErr(ErrEmptyFieldName, path)
		default:
			expr, err = parseField(k, obj[k], kpath)
		}
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func parseCompound(op sqlforge.LogicOp, v any, path string) (sqlforge.FilterExpr, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, parseErr(ErrExpectedArray, path)
	}
	if len(arr) == 0 {
		return nil, parseErr(ErrEmptyFilter, path)
	}
	children := make([]sqlforge.FilterExpr, len(arr))
	for i, elem := range arr {
		epath := path + "[" + strconv.Itoa(i) + "]"
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, parseErr(ErrExpectedObject, epath)
		}
		kids, err := parseObject(obj, epath)
		if err != nil {
			return nil, err
		}
		children[i] = combine(kids)
	}
	return &sqlforge.CompoundExpr{Op: op, Exprs: children}, nil
}

func parseNot(v any, path string) (sqlforge.FilterExpr, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, parseErr(ErrExpectedObject, path)
	}
	kids, err := parseObject(obj, path)
	if err != nil {
		return nil, err
	}
	if len(kids) != 1 {
		return nil, parseErr(ErrNotRequiresOneCondition, path)
	}
	return sqlforge.Not(kids[0]), nil
}

// parseField decodes one field condition: a scalar means equality, an
// array means membership, and a single-key object selects an explicit
// operator.
func parseField(field string, v any, path string) (sqlforge.FilterExpr, error) {
	switch v := v.(type) {
	case map[string]any:
		return parseOperator(field, v, path)
	case []any:
		val, err := jsonValue(v, path)
		if err != nil {
			return nil, err
		}
		return sqlforge.Simple(field, sqlforge.OpIn, val), nil
	default:
		val, err := jsonValue(v, path)
		if err != nil {
			return nil, err
		}
		return sqlforge.Simple(field, sqlforge.OpEQ, val), nil
	}
}

func parseOperator(field string, obj map[string]any, path string) (sqlforge.FilterExpr, error) {
	if len(obj) == 0 {
		return nil, parseErr(ErrEmptyFilter, path)
	}
	if len(obj) > 1 {
		return nil, parseErr(ErrInvalidOperatorValue, path)
	}
	var sigil string
	var operand any
	for k, v := range obj {
		sigil, operand = k, v
	}
	opath := path + "." + sigil
	if !strings.HasPrefix(sigil, "$") {
		return nil, parseErr(ErrUnknownOperator, opath)
	}
	op, ok := sqlforge.OpFromName(sigil[1:])
	if !ok {
		return nil, parseErr(ErrUnknownOperator, opath)
	}
	switch op {
	case sqlforge.OpIn, sqlforge.OpNotIn, sqlforge.OpBetween:
		arr, ok := operand.([]any)
		if !ok {
			return nil, parseErr(ErrExpectedArray, opath)
		}
		if op == sqlforge.OpBetween && len(arr) != 2 {
			return nil, parseErr(ErrInvalidOperatorValue, opath)
		}
		val, err := jsonValue(arr, opath)
		if err != nil {
			return nil, err
		}
		return sqlforge.Simple(field, op, val), nil
	default:
		if _, ok := operand.(map[string]any); ok {
			return nil, parseErr(ErrExpectedValue, opath)
		}
		val, err := jsonValue(operand, opath)
		if err != nil {
			return nil, err
		}
		return sqlforge.Simple(field, op, val), nil
	}
}

// jsonValue converts a decoded JSON scalar or array to a Value.
// Integral float64 values become Int, matching the intent of untrusted
// JSON where 18 and 18.0 are indistinguishable after decoding.
func jsonValue(v any, path string) (sqlforge.Value, error) {
	switch v := v.(type) {
	case nil:
		return sqlforge.Null(), nil
	case bool:
		return sqlforge.Bool(v), nil
	case string:
		return sqlforge.String(v), nil
	case int:
		return sqlforge.Int(int64(v)), nil
	case int64:
		return sqlforge.Int(v), nil
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v <= math.MaxInt64 {
			return sqlforge.Int(int64(v)), nil
		}
		return sqlforge.Float(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return sqlforge.Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return sqlforge.Value{}, parseErr(ErrExpectedValue, path)
		}
		return sqlforge.Float(f), nil
	case []any:
		elems := make([]sqlforge.Value, len(v))
		for i, e := range v {
			ev, err := jsonValue(e, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return sqlforge.Value{}, err
			}
			elems[i] = ev
		}
		return sqlforge.Array(elems...), nil
	case map[string]any:
		return sqlforge.Value{}, parseErr(ErrExpectedValue, path)
	default:
		return sqlforge.Value{}, parseErr(ErrInvalidSource, path)
	}
}

// combine joins sibling conditions with an implicit AND, returning a
// single condition unwrapped.
func combine(exprs []sqlforge.FilterExpr) sqlforge.FilterExpr {
	if len(exprs) == 1 {
		return exprs[0]
	}
	return sqlforge.And(exprs...)
}

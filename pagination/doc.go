// Package pagination provides opaque position cursors and keyset
// ("seek") pagination predicates for the sqlforge statement builders.
//
// # Cursors
//
// A Cursor captures the sort-key values of a pagination boundary row as
// an ordered list of (field, value) pairs. Encode serializes the pairs
// to a compact msgpack record and applies URL-safe, unpadded base64,
// producing an opaque token suitable for a URL query parameter. Decode
// reverses both steps. Cursors hold at most 16 fields of primitive
// values (no arrays) and encoded tokens are capped at 4096 bytes; the
// size check runs before any decoding so adversarial input cost stays
// bounded.
//
// Decode failures are typed and matchable with errors.Is:
//
//	_, err := pagination.Decode(token)
//	switch {
//	case errors.Is(err, pagination.ErrCursorTooLarge):
//	case errors.Is(err, pagination.ErrCursorEncoding):
//	case errors.Is(err, pagination.ErrCursorFormat):
//	case errors.Is(err, pagination.ErrCursorTooManyFields):
//	}
//
// # Keyset predicates
//
// A Keyset turns N prioritized sort fields plus a cursor into the
// standard seek condition: N OR-branches where branch i is an AND of
// equalities on the first i fields plus one directional comparison on
// field i. The resulting sqlforge.FilterExpr compiles through the
// ordinary filter condition compiler.
//
// This package only produces predicates and tokens; it never executes
// queries. PageInfo's has-next heuristic and any attached cursors or
// totals are filled in by the caller after execution.
package pagination

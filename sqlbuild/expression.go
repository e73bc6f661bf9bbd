package sqlbuild

import (
	"fmt"
	"strings"
)

// maxExprLen caps computed-field expression length.
const maxExprLen = 1000

// exprForbiddenSubstrings are rejected anywhere in an expression:
// comment markers, statement terminators, and backtick quoting.
var exprForbiddenSubstrings = []string{"--", "/*", "*/", ";", "`"}

// exprDeniedWords is the keyword/function denylist, matched as whole
// words. The list is defense-in-depth, not a SQL parser, and is
// deliberately non-exhaustive.
var exprDeniedWords = map[string]struct{}{
	"SELECT":    {},
	"INSERT":    {},
	"UPDATE":    {},
	"DELETE":    {},
	"DROP":      {},
	"ALTER":     {},
	"CREATE":    {},
	"TRUNCATE":  {},
	"UNION":     {},
	"EXEC":      {},
	"EXECUTE":   {},
	"GRANT":     {},
	"REVOKE":    {},
	"SLEEP":     {},
	"BENCHMARK": {},
	"WAITFOR":   {},
	"LOAD_FILE": {},
	"OUTFILE":   {},
	"DUMPFILE":  {},
}

// exprDeniedPrefixes reject whole words by prefix, covering the system
// catalogs and timing functions like pg_sleep.
var exprDeniedPrefixes = []string{"PG_", "INFORMATION_SCHEMA"}

// ValidateExpr checks a computed-field SQL expression against the
// denylist. It rejects empty or over-long text, comment markers,
// statement terminators, backtick quoting and hex markers, and a fixed
// set of keywords matched with word-boundary checking, so "last_updated"
// passes while a bare "UPDATE" does not. This is defense-in-depth for
// trusted callers, not a complete SQL parser.
func ValidateExpr(expr string) error {
	if expr == "" {
		return fmt.Errorf("sqlforge: computed expression must not be empty")
	}
	if len(expr) > maxExprLen {
		return fmt.Errorf("sqlforge: computed expression exceeds %d characters", maxExprLen)
	}
	for _, sub := range exprForbiddenSubstrings {
		if strings.Contains(expr, sub) {
			return fmt.Errorf("sqlforge: computed expression contains forbidden sequence %q", sub)
		}
	}
	for _, word := range exprWords(expr) {
		upper := strings.ToUpper(word)
		if _, ok := exprDeniedWords[upper]; ok {
			return fmt.Errorf("sqlforge: computed expression contains forbidden keyword %q", word)
		}
		// Hex literals are rejected by their word prefix, so identifiers
		// merely embedding the sequence (tax0x_rate) still pass.
		if strings.HasPrefix(upper, "0X") {
			return fmt.Errorf("sqlforge: computed expression contains hex literal %q", word)
		}
		for _, prefix := range exprDeniedPrefixes {
			if strings.HasPrefix(upper, prefix) {
				return fmt.Errorf("sqlforge: computed expression references forbidden name %q", word)
			}
		}
	}
	return nil
}

// exprWords splits an expression into identifier-like words. Word
// characters are ASCII alphanumerics and underscores, so keywords
// embedded in larger identifiers do not match.
func exprWords(expr string) []string {
	return strings.FieldsFunc(expr, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return false
		case r >= '0' && r <= '9', r == '_':
			return false
		default:
			return true
		}
	})
}

// checkExpr panics when expr fails validation. The select builder calls
// it at configuration time, in the same programmer-error regime as
// checkIdent.
func checkExpr(expr string) {
	if err := ValidateExpr(expr); err != nil {
		panic(err.Error())
	}
}

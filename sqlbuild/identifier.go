package sqlbuild

import (
	"fmt"
	"regexp"
)

// validIdentRe validates SQL identifiers: an ASCII letter or underscore
// followed by up to 62 ASCII alphanumerics or underscores.
var validIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// ValidIdent reports whether s is a safe SQL identifier for use as a
// table, column or alias name.
func ValidIdent(s string) bool {
	return validIdentRe.MatchString(s)
}

// checkIdent panics when s is not a valid identifier. Builders call it
// at configuration time; an invalid identifier from trusted code is a
// programmer error, not recoverable input.
func checkIdent(kind, s string) {
	if !ValidIdent(s) {
		panic(fmt.Sprintf("sqlforge: invalid %s identifier %q", kind, s))
	}
}

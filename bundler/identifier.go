package bundler

import (
	"github.com/daac-tools/vaporetto-wasm/errors"
)

// Name fragments baked into every generated bundle. The private prefix
// distinguishes this bundler's runtime bindings from any other generated
// name on the page.
const (
	privatePrefix = "__vaporetto_"
	bindingSuffix = "_wbg"
	factoryPrefix = "vaporetto_"
)

// Identifier is a validated namespacing token. It is guaranteed to be a
// legal fragment of a JavaScript identifier: letters, digits and
// underscores, not starting with a digit.
type Identifier string

// ParseIdentifier validates a caller-supplied namespacing token.
// Validation happens before any file or process I/O so that a bad token
// can never produce a syntactically broken bundle.
func ParseIdentifier(s string) (Identifier, error) {
	if s == "" {
		return "", errors.InvalidIdentifier(s, "must not be empty")
	}
	if s[0] >= '0' && s[0] <= '9' {
		return "", errors.InvalidIdentifier(s, "must not start with a digit")
	}
	for _, c := range s {
		if !identifierChar(c) {
			return "", errors.InvalidIdentifier(s, "contains characters outside [A-Za-z0-9_]")
		}
	}
	return Identifier(s), nil
}

func identifierChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	}
	return false
}

// RuntimeBinding returns the identifier-qualified name that replaces
// the loader's generic wasm_bindgen symbol.
func (id Identifier) RuntimeBinding() string {
	return privatePrefix + string(id) + bindingSuffix
}

// FactoryName returns the externally callable entry point of the bundle.
func (id Identifier) FactoryName() string {
	return factoryPrefix + string(id)
}

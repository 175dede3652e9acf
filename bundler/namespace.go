package bundler

import (
	"strings"
)

// genericToken is the bound-function name wasm-bindgen emits under
// --target no-modules. Every bundle loaded on a page would collide on
// it without rewriting.
const genericToken = "wasm_bindgen"

// RewriteLoader replaces every occurrence of the generic wasm_bindgen
// token with the identifier-qualified runtime binding. This is a plain
// textual substitution, not scoped to identifier boundaries: the loader
// is machine-generated and the token never appears as a substring of an
// unrelated name under wasm-bindgen's naming convention.
func RewriteLoader(loader string, id Identifier) string {
	return strings.ReplaceAll(loader, genericToken, id.RuntimeBinding())
}

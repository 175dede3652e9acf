package bundler

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/daac-tools/vaporetto-wasm/errors"
)

// exportedCapability is the class the instantiated module exposes and
// the factory returns.
const exportedCapability = "Vaporetto"

// RenderBundle concatenates the rewritten loader with the generated
// async factory. The factory holds the inlined data URI, feeds it to the
// runtime binding via fetch, awaits instantiation, and returns the
// exported capability:
//
//	async function vaporetto_<id>(){
//	    const data = "data:application/wasm;base64,...";
//	    await __vaporetto_<id>_wbg(fetch(data));
//	    return __vaporetto_<id>_wbg.Vaporetto;
//	}
//
// The identifier reaches the output only through its derived names, so
// the emitted code is well-formed for any validated identifier.
func RenderBundle(rewrittenLoader string, id Identifier, dataURI string) string {
	binding := id.RuntimeBinding()

	var b strings.Builder
	b.Grow(len(rewrittenLoader) + len(dataURI) + 256)
	b.WriteString(rewrittenLoader)
	b.WriteString("\n")
	fmt.Fprintf(&b, "async function %s(){\n", id.FactoryName())
	fmt.Fprintf(&b, "    const data = \"%s\";\n", dataURI)
	fmt.Fprintf(&b, "    await %s(fetch(data));\n", binding)
	fmt.Fprintf(&b, "    return %s.%s;\n", binding, exportedCapability)
	b.WriteString("}\n")
	return b.String()
}

// WriteBundle writes the final script to outputPath, overwriting any
// existing file.
func WriteBundle(outputPath, script string) error {
	if err := os.WriteFile(outputPath, []byte(script), 0o644); err != nil {
		return errors.IO(errors.PhaseEmit, outputPath, err)
	}
	Logger().Debug("bundle written",
		zap.String("path", outputPath),
		zap.Int("bytes", len(script)))
	return nil
}

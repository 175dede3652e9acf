package bundler

import (
	"context"

	"go.uber.org/zap"
)

// BuildRequest captures one bundle generation as an immutable value.
type BuildRequest struct {
	// ModelPath is the model file handed to the toolchain.
	ModelPath string
	// Identifier is the raw namespacing token; it is validated before
	// any I/O happens.
	Identifier string
	// OutputPath is the destination of the generated bundle,
	// overwritten on every run.
	OutputPath string
}

// Build runs the full pipeline for one request: invoke the toolchain,
// read its artifacts, inline the binary, namespace the loader, and emit
// the bundle. Stages run strictly in order and every failure is
// terminal; either a complete self-contained bundle is written to the
// output path, or nothing is.
func Build(ctx context.Context, req BuildRequest, tc ToolchainConfig) error {
	id, err := ParseIdentifier(req.Identifier)
	if err != nil {
		return err
	}

	if err := tc.Run(ctx, req.ModelPath); err != nil {
		return err
	}

	artifact, err := ReadArtifact(tc)
	if err != nil {
		return err
	}

	dataURI := InlineWasm(artifact.Wasm)
	rewritten := RewriteLoader(artifact.Loader, id)

	Logger().Debug("loader namespaced",
		zap.String("factory", id.FactoryName()),
		zap.String("binding", id.RuntimeBinding()))

	return WriteBundle(req.OutputPath, RenderBundle(rewritten, id, dataURI))
}

package bundler

import (
	stderrors "errors"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/daac-tools/vaporetto-wasm/errors"
)

// Artifact holds the two toolchain outputs, fully read into memory.
// It is immutable once read; every later stage is a pure function of it.
type Artifact struct {
	// Wasm is the compiled binary module.
	Wasm []byte
	// Loader is the wasm-bindgen glue script that instantiates it.
	Loader string
}

// ReadArtifact loads both build outputs from the toolchain's fixed
// locations under the crate directory. An absent file is reported as a
// MissingArtifact so callers can tell a broken path convention from a
// generic read failure.
func ReadArtifact(tc ToolchainConfig) (*Artifact, error) {
	wasm, err := readOutput(tc.WasmPath())
	if err != nil {
		return nil, err
	}

	loader, err := readOutput(tc.LoaderPath())
	if err != nil {
		return nil, err
	}

	Logger().Debug("artifacts read",
		zap.Int("wasm_bytes", len(wasm)),
		zap.Int("loader_bytes", len(loader)))

	return &Artifact{Wasm: wasm, Loader: string(loader)}, nil
}

func readOutput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.MissingArtifact(path, err)
		}
		return nil, errors.IO(errors.PhaseRead, path, err)
	}
	return data, nil
}

package bundler

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/daac-tools/vaporetto-wasm/errors"
)

// Fixed artifact names produced by wasm-pack for the vaporetto_wasm crate.
const (
	wasmArtifact   = "pkg/vaporetto_wasm_bg.wasm"
	loaderArtifact = "pkg/vaporetto_wasm.js"
)

// ToolchainConfig describes the external compiler invocation. It is an
// explicit parameter of every build, never ambient state, so tests can
// substitute a stub toolchain.
type ToolchainConfig struct {
	// Command is the toolchain executable, looked up on PATH if relative.
	Command string
	// Args are the toolchain's own arguments, passed through untouched.
	Args []string
	// CrateDir is the working directory of the toolchain process and the
	// root the pkg/ artifacts are resolved against.
	CrateDir string
	// ModelEnvVar carries the model path to the toolchain. Using the
	// environment keeps the toolchain's argument parsing untouched.
	ModelEnvVar string
}

// DefaultToolchain returns the production wasm-pack invocation.
func DefaultToolchain() ToolchainConfig {
	return ToolchainConfig{
		Command:     "wasm-pack",
		Args:        []string{"build", "--release", "--target", "no-modules"},
		CrateDir:    ".",
		ModelEnvVar: "VAPORETTO_MODEL_PATH",
	}
}

// WasmPath returns the location of the compiled binary artifact.
func (tc ToolchainConfig) WasmPath() string {
	return filepath.Join(tc.CrateDir, filepath.FromSlash(wasmArtifact))
}

// LoaderPath returns the location of the generated loader script.
func (tc ToolchainConfig) LoaderPath() string {
	return filepath.Join(tc.CrateDir, filepath.FromSlash(loaderArtifact))
}

// Run executes the toolchain with the model path injected through the
// configured environment variable. Only the exit status is inspected;
// the toolchain's stdout and stderr pass through to this process's
// streams. A non-zero exit aborts the pipeline before any artifact I/O.
func (tc ToolchainConfig) Run(ctx context.Context, modelPath string) error {
	abs, err := filepath.Abs(modelPath)
	if err != nil {
		return errors.IO(errors.PhaseInvoke, modelPath, err)
	}

	Logger().Debug("invoking toolchain",
		zap.String("command", tc.Command),
		zap.Strings("args", tc.Args),
		zap.String("crate_dir", tc.CrateDir),
		zap.String("model", abs))

	cmd := exec.CommandContext(ctx, tc.Command, tc.Args...)
	cmd.Dir = tc.CrateDir
	cmd.Env = append(os.Environ(), tc.ModelEnvVar+"="+abs)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.ToolchainFailure(tc.Command, err)
	}
	return nil
}

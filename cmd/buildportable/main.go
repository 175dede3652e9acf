// Command buildportable generates a self-contained JavaScript bundle
// from a wasm-pack build of the vaporetto_wasm crate.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/daac-tools/vaporetto-wasm/bundler"
)

// version is set via -ldflags.
var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "buildportable",
		Short: "Generate a portable JavaScript bundle embedding a vaporetto wasm model",
		Long: `buildportable compiles the vaporetto_wasm crate against a model file and
packs the result into a single dependency-free JavaScript file. The wasm
binary is inlined as a base64 data URI and every generated symbol is
namespaced with the given identifier, so bundles built with different
identifiers can be loaded on the same page.

The bundle exposes one entry point, an async factory named
vaporetto_<identifier> that instantiates the module and returns the
Vaporetto class.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, v)
		},
	}

	cmd.Flags().String("model", "", "path to the model file")
	cmd.Flags().String("identifier", "", "namespacing token used in the generated function names")
	cmd.Flags().String("output", "", "path of the generated bundle")
	cmd.Flags().String("crate-dir", ".", "directory of the vaporetto_wasm crate")
	cmd.Flags().String("wasm-pack", "wasm-pack", "wasm-pack executable")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging")

	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("identifier")
	_ = cmd.MarkFlagRequired("output")

	// VAPORETTO_CRATE_DIR and VAPORETTO_WASM_PACK override the optional
	// flags' defaults.
	_ = v.BindPFlags(cmd.Flags())
	v.SetEnvPrefix("VAPORETTO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func runBuild(cmd *cobra.Command, v *viper.Viper) error {
	if v.GetBool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		bundler.SetLogger(logger)
	}

	tc := bundler.DefaultToolchain()
	tc.Command = v.GetString("wasm-pack")
	tc.CrateDir = v.GetString("crate-dir")

	return bundler.Build(cmd.Context(), bundler.BuildRequest{
		ModelPath:  v.GetString("model"),
		Identifier: v.GetString("identifier"),
		OutputPath: v.GetString("output"),
	}, tc)
}

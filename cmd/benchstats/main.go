// Command benchstats reads tokenizer benchmark output on stdin and
// prints per-engine throughput statistics.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/daac-tools/vaporetto-wasm/benchstats"
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
	var chars int

	cmd := &cobra.Command{
		Use:   "benchstats",
		Short: "Aggregate tokenizer benchmark timings into throughput statistics",
		Long: `benchstats scans benchmark harness output for per-engine "Elapsed"
timing lines, converts each elapsed time to a throughput in characters
per second, and prints "<engine> <mean> <stddev>" for every engine that
produced at least one sample.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := benchstats.New(chars)
			if err := c.Collect(cmd.InOrStdin()); err != nil {
				return err
			}
			for _, r := range c.Results() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %v %v\n", r.Engine, r.Mean, r.StdDev)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&chars, "chars", benchstats.DefaultCorpusChars,
		"character count of the benchmark corpus")

	return cmd
}

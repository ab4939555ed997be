package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/grouptopo/grouptopo"
)

var (
	flagVerify        bool
	flagWarnThreshold int
	flagOut           string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Compute hoists for a JSON target list",
	Long: `run reads a JSON array of targets, each with its provided name,
direct dependencies and ideal path, and writes the computed hoist list as
JSON. With no file argument, input is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagVerify, "verify", false, "re-check directory/target consistency and post-hoist toposortability")
	runCmd.Flags().IntVar(&flagWarnThreshold, "warn-threshold", 0, "warn on stderr when a directory's local sibling count exceeds this (0, the default, warns on every non-trivial permutation search)")
	runCmd.Flags().StringVar(&flagOut, "out", "", "write output to this path instead of stdout")
}

func runRun(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	opts := []grouptopo.RunOption{
		grouptopo.WithVerify(flagVerify),
		grouptopo.WithWarnDiagnostics(cmd.ErrOrStderr(), flagWarnThreshold),
	}

	return grouptopo.Run(context.Background(), in, out, opts...)
}

// Package app wires the grouptopo command-line tool: a single cobra root
// command with a "run" subcommand, no persisted configuration by design
// (the engine takes its input as a stream, not an environment).
package app

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "grouptopo",
	Short: "Grouped topological sort for build-system directory generators",
	Long: `grouptopo computes a small set of target relocations ("hoists") so that
every directory in a build tree can order its subdirectories to satisfy
every dependency between the targets they contain.`,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command, returning any error it produces.
func Execute() error {
	return rootCmd.Execute()
}

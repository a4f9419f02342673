package cmd

import (
	"github.com/spf13/cobra"
)

// inspectCmd is an explicit alias for the root pipeline run
var inspectCmd = &cobra.Command{
	Use:   "inspect [SNAPSHOT]",
	Short: "Classify a page snapshot and score its project context",
	Long: Logo + `
Runs platform detection and context scoring over a captured page snapshot.

Reads the snapshot from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) {
	runRootCommand(cmd, args)
}

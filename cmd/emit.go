package cmd

import (
	"fmt"
	"os"
	"time"

	"fafscan/pkg/config"

	"github.com/spf13/cobra"
)

var (
	emitOut string
)

// emitCmd runs the pipeline and writes the rendered .faf document
var emitCmd = &cobra.Command{
	Use:   "emit [SNAPSHOT]",
	Short: "Write the .faf context document for a page snapshot",
	Long: `Runs the detection pipeline and writes the rendered .faf context document
to the configured output directory.

Reads the snapshot from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEmit,
}

func runEmit(cmd *cobra.Command, args []string) {
	snap, err := loadSnapshot(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	rules, err := config.LoadCustomRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	_, doc := analyze(snap, rules, time.Now())

	outPath, err := writeDocument(doc, cfg.OutputDir, emitOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing document: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(outPath)
}

func init() {
	emitCmd.Flags().StringVar(&emitOut, "out", "", "Output filename (defaults to <host>.faf)")
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"fafscan/cmd/ui/inspect"
	"fafscan/pkg/config"
	"fafscan/pkg/snapshot"
	"fafscan/pkg/util"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const Version = "1.0.0"

var (
	jsonOutput      bool
	skipInteractive bool

	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A623")).Bold(true)
	tipMsgStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("190")).Italic(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
)

const Logo = `
███████╗ █████╗ ███████╗███████╗ ██████╗ █████╗ ███╗   ██╗
██╔════╝██╔══██╗██╔════╝██╔════╝██╔════╝██╔══██╗████╗  ██║
█████╗  ███████║█████╗  ███████╗██║     ███████║██╔██╗ ██║
██╔══╝  ██╔══██║██╔══╝  ╚════██║██║     ██╔══██║██║╚██╗██║
██║     ██║  ██║██║     ███████║╚██████╗██║  ██║██║ ╚████║
╚═╝     ╚═╝  ╚═╝╚═╝     ╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═══╝
`

var rootCmd = &cobra.Command{
	Use:   "fafscan [SNAPSHOT]",
	Short: "Classify a captured page and score its project context",
	Long: Logo + `
Fafscan takes a page snapshot captured by a DOM-side collaborator, classifies
the hosting platform (GitHub, Monaco, CodeMirror, vscode.dev, StackBlitz,
CodeSandbox, localhost), scores how much machine-inspectable project context
the page exposes, and renders a portable .faf context document for AI tooling.

Reads the snapshot from stdin when no file is given.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	Run:     runRootCommand,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) {
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

	report, doc := analyze(snap, rules, time.Now())

	if jsonOutput || cfg.JSONOutput || skipInteractive || !isTerminal() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(report)
		return
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))

	wantsDocument, err := inspect.Show(inspect.Summary{
		URL:        report.URL,
		Platform:   string(report.Detection.Platform),
		Score:      report.Score,
		Signals:    report.Detection.Signals,
		Confidence: report.Confidence,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error showing results: %v\n", err)
		os.Exit(1)
	}

	if !wantsDocument {
		fmt.Println("Skipping document generation.")
		return
	}

	outPath, err := writeDocument(doc, cfg.OutputDir, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing document: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s\n", endingMsgStyle.Render("✅ Context document written to "+outPath))
	fmt.Printf("%s\n", tipMsgStyle.Render("Tip: Use --json flag for CI/automation mode"))
}

// loadSnapshot reads the snapshot from the given file argument, or from
// stdin when no argument was supplied.
func loadSnapshot(args []string) (snapshot.Snapshot, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return snapshot.Snapshot{}, fmt.Errorf("failed to read snapshot from stdin: %w", err)
		}
		return snapshot.Parse(data)
	}

	path, err := util.ValidateSnapshotPath(args[0])
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	return snapshot.Load(path)
}

func writeDocument(doc renderable, outputDir, override string) (string, error) {
	name := doc.Filename()
	if override != "" {
		name = override
	}

	outPath := name
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, config.PermDirectory); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
		outPath = filepath.Join(outputDir, name)
	}

	if err := os.WriteFile(outPath, []byte(doc.Render()), config.PermDocumentFile); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	return outPath, nil
}

// renderable is what writeDocument needs from a context document.
type renderable interface {
	Filename() string
	Render() string
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.SetVersionTemplate("fafscan version {{.Version}}\n")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(emitCmd)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&skipInteractive, "no-interactive", false, "Skip interactive prompts (for CI/automation)")
}

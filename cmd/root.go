// Package cmd provides the root command and CLI setup for tally.
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/tally/internal/adapter"
	"github.com/mouse-blink/tally/internal/controller"
	"github.com/mouse-blink/tally/internal/domain"
	m "github.com/mouse-blink/tally/internal/model"
	"github.com/mouse-blink/tally/internal/syntax"
)

const reportCacheSize = 512

var registry = syntax.NewRegistry()

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()

	cache, err := adapter.NewReportCache(reportCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}

	workflow = domain.NewWorkflow(registry, fsAdapter, cache)
}

var granularFlag bool
var parallelFlag int
var extensionFlags []string
var excludeFlags []string
var jsonOutputFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally [paths...]",
		Short: "Count blank, comment, and code lines in source files",
		Long: `Tally counts blank, comment, and code lines in source files
(Java, JavaScript/TypeScript, Python), optionally breaking code lines
down into granular categories such as imports, declarations, and
control flow.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./cmd ./pkg    scan multiple directories (top level only)
  - Main.java      count a single file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := workflow.Count(domain.CountArgs{
				Paths:      parsePaths(args),
				Extensions: extensionFlags,
				Exclude:    excludeFlags,
				Granular:   granularFlag,
				Workers:    parallelFlag,
			})
			if err != nil {
				return err
			}

			if jsonOutputFlag != "" {
				if err := reportStore.Save(m.Path(jsonOutputFlag), report); err != nil {
					return err
				}
			}

			ui := controller.NewSimpleUI(cmd)

			return ui.DisplayReport(report)
		},
	}

	cmd.Flags().BoolVarP(&granularFlag, "granular", "g", false, "break code lines down into granular categories")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", runtime.NumCPU(), "number of files counted in parallel")
	cmd.Flags().StringArrayVarP(&extensionFlags, "ext", "e", nil,
		fmt.Sprintf("restrict directory scans to extensions (supported: %s)",
			strings.Join(registry.Extensions(), ", ")))
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringVar(&jsonOutputFlag, "json", "", "also export the report as JSON to the given file")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parsePaths converts the raw arguments, defaulting to the current
// directory scanned recursively.
func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

package cmd

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/tally/internal/controller"
	"github.com/mouse-blink/tally/internal/domain"
	m "github.com/mouse-blink/tally/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()
var viewFromFlag string
var viewGranularFlag bool

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [paths...]",
		Short: "Browse count results interactively",
		Long: `Browse per-file count results in an interactive terminal UI.
Counts the given paths (or loads a report exported with --json via
--from) and opens a filterable file list with a detail pane.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := viewReport(args)
			if err != nil {
				return err
			}

			ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))

			return ui.DisplayReport(report)
		},
	}

	cmd.Flags().StringVar(&viewFromFlag, "from", "", "load a previously exported JSON report instead of counting")
	cmd.Flags().BoolVarP(&viewGranularFlag, "granular", "g", true, "include the granular category breakdown")

	return cmd
}

func viewReport(args []string) (m.BatchReport, error) {
	if viewFromFlag != "" {
		return reportStore.Load(m.Path(viewFromFlag))
	}

	return workflow.Count(domain.CountArgs{
		Paths:    parsePaths(args),
		Granular: viewGranularFlag,
		Workers:  runtime.NumCPU(),
	})
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/tally/internal/adapter"
	"github.com/mouse-blink/tally/internal/controller"
	"github.com/mouse-blink/tally/internal/domain"
	m "github.com/mouse-blink/tally/internal/model"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()
var watchGranularFlag bool
var watchDebounceFlag time.Duration

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Recount on file changes",
		Long: `Watch a directory and recount whenever source files change.
Changes are debounced; unchanged files are served from the report
cache. Stop with Ctrl-C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := m.Path(".")
			if len(args) == 1 {
				root = m.Path(args[0])
			}

			ui := controller.NewSimpleUI(cmd)

			recount := func() error {
				report, err := workflow.Count(domain.CountArgs{
					Paths:    []m.Path{m.Path(string(root) + "/...")},
					Granular: watchGranularFlag,
				})
				if err != nil {
					return err
				}

				return ui.DisplayReport(report)
			}

			if err := recount(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			watcher := adapter.NewWatcher(watchDebounceFlag)

			return watcher.Watch(ctx, root, func(_ []m.Path) {
				if err := recount(); err != nil {
					cmd.PrintErrf("recount error: %v\n", err)
				}
			})
		},
	}

	cmd.Flags().BoolVarP(&watchGranularFlag, "granular", "g", false, "break code lines down into granular categories")
	cmd.Flags().DurationVar(&watchDebounceFlag, "debounce", 250*time.Millisecond, "delay before recounting after a change")

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

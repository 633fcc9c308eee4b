package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tally/internal/controller"
)

// languagesCmd represents the languages command.
var languagesCmd = newLanguagesCmd()

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and file extensions",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := controller.NewSimpleUI(cmd)

			return ui.DisplayLanguages(registry.Languages())
		},
	}
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

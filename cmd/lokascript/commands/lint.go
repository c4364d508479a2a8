package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lokascript/semantic-go"
	"github.com/lokascript/semantic-go/errors"
)

// LintCmd represents the lint command
var LintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint the registered command schemas",
	Long: `Check every registered command schema for authoring mistakes:
ambiguous shape sets, oversized shape sets, and category roles the
schema forgot to declare. Intended for development and CI, not runtime.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := lokascript.Default()
		if err != nil {
			return errors.Wrap(err, "failed to build engine")
		}

		issues := engine.Lint()
		if len(issues) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Green(fmt.Sprintf("%d schemas clean", len(engine.Registry().Actions()))))
			return nil
		}
		for _, issue := range issues {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n",
				pterm.Yellow(fmt.Sprintf("[%s]", issue.Code)), issue.Action, issue.Message)
		}
		return errors.Newf("%d schema issues", len(issues))
	},
}

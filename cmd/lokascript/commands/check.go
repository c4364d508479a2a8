package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lokascript/semantic-go"
	"github.com/lokascript/semantic-go/errors"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check TEXT",
	Short: "Run the cheap pre-parse validation tier",
	Long: `Check an utterance without full pattern matching: leading command
word, balanced quotes and brackets. Suited to editor feedback on every
keystroke.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := lokascript.Default()
		if err != nil {
			return errors.Wrap(err, "failed to build engine")
		}

		result := engine.QuickCheck(strings.Join(args, " "), viper.GetString("language"))
		for _, msg := range result.Errors {
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Red("error: "+msg))
		}
		for _, msg := range result.Warnings {
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Yellow("warning: "+msg))
		}
		if !result.Valid {
			return errors.New("quick check failed")
		}
		fmt.Fprintln(cmd.OutOrStdout(), pterm.Green("ok"))
		return nil
	},
}

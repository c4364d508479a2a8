package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lokascript/semantic-go"
	"github.com/lokascript/semantic-go/errors"
	"github.com/lokascript/semantic-go/validate"
)

var parseJSON bool

// ParseCmd represents the parse command
var ParseCmd = &cobra.Command{
	Use:   "parse TEXT",
	Short: "Parse a command utterance into its semantic roles",
	Long: `Parse a command utterance against the language's patterns and
validate the bound roles against the command schema.

Examples:
  lokascript parse "toggle .active on #button"
  lokascript parse --lang es "alternar .active"
  lokascript parse --lang ja ".activeを#buttonに切り替え"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	ParseCmd.Flags().BoolVarP(&parseJSON, "json", "j", false, "Output the parse as JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	engine, err := lokascript.Default()
	if err != nil {
		return errors.Wrap(err, "failed to build engine")
	}

	text := strings.Join(args, " ")
	lang := viper.GetString("language")

	res, ok := engine.Parse(text, lang)
	if !ok {
		quick := engine.QuickCheck(text, lang)
		for _, msg := range append(quick.Errors, quick.Warnings...) {
			fmt.Fprintln(cmd.ErrOrStderr(), pterm.Yellow(msg))
		}
		return errors.Newf("no pattern matched %q in language %q", text, lang)
	}

	if parseJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode parse result")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		pterm.Cyan(res.Match.Action),
		pterm.Gray(fmt.Sprintf("(%s, confidence %.2f)", res.Match.PatternID, res.Confidence)))
	for _, b := range res.Match.Bindings {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-14s %s\n", b.Role, b.Value)
	}
	if !res.Validation.Valid || len(res.Validation.Warnings) > 0 {
		fmt.Fprint(cmd.OutOrStdout(), validate.Format(res.Validation))
	}
	return nil
}

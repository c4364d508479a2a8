package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lokascript/semantic-go"
	"github.com/lokascript/semantic-go/errors"
	"github.com/lokascript/semantic-go/semantic"
)

var patternsAction string

// PatternsCmd represents the patterns command
var PatternsCmd = &cobra.Command{
	Use:   "patterns LANG",
	Short: "List the pattern candidates for a language",
	Long: `List every pattern candidate a language resolves to, in matcher
order: hand-authored idioms first, synthesized fallbacks after.

Examples:
  lokascript patterns en
  lokascript patterns ja --action toggle`,
	Args: cobra.ExactArgs(1),
	RunE: runPatterns,
}

func init() {
	PatternsCmd.Flags().StringVarP(&patternsAction, "action", "a", "", "Limit to one command")
}

func runPatterns(cmd *cobra.Command, args []string) error {
	engine, err := lokascript.Default()
	if err != nil {
		return errors.Wrap(err, "failed to build engine")
	}

	lang := args[0]
	store := engine.Store()

	patterns := store.AllPatternsFor(lang)
	if patternsAction != "" {
		patterns = store.PatternsFor(lang, semantic.ActionType(patternsAction))
	}
	if len(patterns) == 0 {
		return errors.Newf("no patterns for language %q", lang)
	}

	for _, p := range patterns {
		line := p.String()
		if p.Synthesized {
			line = pterm.Gray(line)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d patterns\n", len(patterns))
	return nil
}

package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lokascript/semantic-go"
	"github.com/lokascript/semantic-go/corpus"
	"github.com/lokascript/semantic-go/errors"
)

var (
	scoreWatch   bool
	scoreVerbose bool
)

// ScoreCmd represents the score command
var ScoreCmd = &cobra.Command{
	Use:   "score CORPUS...",
	Short: "Score YAML test corpora against the matcher",
	Long: `Run one or more YAML corpora through the full parse pipeline and
report per-entry pass/fail. A failing entry never aborts the run.

With --watch the corpora are re-scored whenever a file changes, for a
tight authoring loop on new language patterns.

Examples:
  lokascript score corpus/en.yaml
  lokascript score --watch corpus/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

func init() {
	ScoreCmd.Flags().BoolVarP(&scoreWatch, "watch", "w", false, "Re-score when corpus files change")
	ScoreCmd.Flags().BoolVar(&scoreVerbose, "failures", false, "Print each failing entry")
}

func runScore(cmd *cobra.Command, args []string) error {
	engine, err := lokascript.Default()
	if err != nil {
		return errors.Wrap(err, "failed to build engine")
	}
	runner := corpus.NewRunner(engine.Matcher(), engine.Validator())

	if !scoreWatch {
		return scoreOnce(cmd, runner, args)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()
	for _, path := range args {
		if err := watcher.Add(path); err != nil {
			return errors.Wrapf(err, "failed to watch %s", path)
		}
	}

	if err := scoreOnce(cmd, runner, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s changed, re-scoring\n", event.Name)
			if err := scoreOnce(cmd, runner, args); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), errors.Wrap(err, "watch error"))
		case <-stop:
			return nil
		}
	}
}

func scoreOnce(cmd *cobra.Command, runner *corpus.Runner, paths []string) error {
	failed := 0
	for _, path := range paths {
		c, err := corpus.Load(path)
		if err != nil {
			return err
		}
		report := runner.Run(c)
		failed += report.Failed

		tally := pterm.Green(fmt.Sprintf("%d/%d", report.Passed, report.Total))
		if report.Failed > 0 {
			tally = pterm.Red(fmt.Sprintf("%d/%d", report.Passed, report.Total))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", tally, path)

		if scoreVerbose {
			for _, r := range report.Results {
				if r.Passed {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s: %s\n", pterm.Red("✗"), r.ID, r.Failure)
			}
		}
	}
	if failed > 0 {
		return errors.Newf("%d corpus entries failed", failed)
	}
	return nil
}

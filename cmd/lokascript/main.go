package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lokascript/semantic-go/cmd/lokascript/commands"
	"github.com/lokascript/semantic-go/logger"
)

var rootCmd = &cobra.Command{
	Use:   "lokascript",
	Short: "lokascript - multilingual semantic command parser",
	Long: `lokascript - semantic pattern matching for a multilingual command DSL.

Commands are parsed against per-language surface patterns: hand-authored
idioms where they exist, grammar-profile synthesis everywhere else.

Examples:
  lokascript parse "toggle .active on #button"      # Parse an English command
  lokascript parse --lang ja ".activeを切り替え"      # Parse Japanese
  lokascript patterns ja                            # List a language's patterns
  lokascript lint                                   # Lint the command schemas
  lokascript score corpus/en.yaml                   # Score a test corpus`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeWithLevel(false, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().String("lang", "en", "Language code for parsing (BCP-47, regional variants accepted)")
	_ = viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("lang"))

	// Optional config file; flags take precedence.
	viper.SetConfigName(".lokascript")
	viper.SetConfigType("toml")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("LOKASCRIPT")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config: %v\n", err)
		}
	}

	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.PatternsCmd)
	rootCmd.AddCommand(commands.LintCmd)
	rootCmd.AddCommand(commands.ScoreCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

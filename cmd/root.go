package cmd

import (
	"log/slog"
	"os"

	"github.com/arcanaland/flashcards/internal/catalog"
	"github.com/arcanaland/flashcards/internal/config"
	"github.com/arcanaland/flashcards/internal/logging"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "flashcards",
	Short: "Study flashcard decks from the terminal or a browser",
	Long: `Flashcards shows the cards of a subject deck one at a time in shuffled order.
Reveal the answer, move on to the next card, and restart the deck once every
card has been reviewed.

Built-in decks cover the Hebrew alphabet, Euclid's postulates and a starter set
of Heisig kanji. Add your own by placing deck files in the deck library.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	logLevelFlag string
	themeFlag    string
)

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	RootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Colour theme (dark, light); overrides config")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadSettings reads the config file, applies flag overrides and installs
// the logger.
func loadSettings(format logging.Format) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}

	logger := logging.Setup(cfg.LogLevel, format, os.Stderr)
	return cfg, logger, nil
}

// loadCatalog returns the built-in decks plus the deck library.
func loadCatalog(logger *slog.Logger) *catalog.Catalog {
	return catalog.Load(config.GetDeckLibraryPath(), logger)
}

package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/flashcards/internal/config"
	"github.com/arcanaland/flashcards/internal/logging"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage flashcard decks",
	Long:  `Commands for listing decks and managing your deck library.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadSettings(logging.Text)
		if err != nil {
			return err
		}

		decks := loadCatalog(logger).List()
		subject := "\x00"
		for _, d := range decks {
			if d.Subject != subject {
				subject = d.Subject
				heading := subject
				if heading == "" {
					heading = "other"
				}
				fmt.Println(colorize.CyanString("%s:", heading))
			}

			marker := "  "
			suffix := ""
			if d.ID == cfg.DefaultDeck {
				marker = "* "
				suffix = colorize.HiWhiteString(" [DEFAULT]")
			}
			direction := ""
			if d.Reversed {
				direction = ", reversed"
			}
			fmt.Printf("%s%s (%s, %d cards%s)%s\n", marker, d.ID, d.DisplayName(), d.Len(), direction, suffix)
		}

		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_id]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckID := args[0]

		_, logger, err := loadSettings(logging.Text)
		if err != nil {
			return err
		}

		// Check the deck exists before saving it
		if _, err := loadCatalog(logger).Lookup(deckID); err != nil {
			return err
		}

		if err := config.SetDefaultDeck(deckID); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		fmt.Printf("Default deck set to: %s\n", deckID)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}

		fmt.Println("Deck library initialized at:", libraryPath)
		fmt.Println("You can now add decks by copying .toml deck files to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/arcanaland/flashcards/internal/logging"
	"github.com/arcanaland/flashcards/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the study session over a JSON HTTP API",
	Long: `Serve starts an HTTP server for a browser front end. The server holds a
single study session; starting a deck replaces it.

Examples:
  flashcards serve
  flashcards serve --listen :9000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadSettings(logging.JSON)
		if err != nil {
			return err
		}

		listen, _ := cmd.Flags().GetString("listen")
		if listen == "" {
			listen = cfg.Listen
		}

		gin.SetMode(gin.ReleaseMode)
		srv := server.New(loadCatalog(logger), logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx, listen)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "Address to listen on; overrides config")
}

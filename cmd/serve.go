package cmd

import (
	"github.com/Sofiane224434/cinetech/pkg/logger"
	"github.com/Sofiane224434/cinetech/server"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the catalog server",
	Long:  `start the catalog server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := loadConfig()
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}

		catalog, collections, store, err := newCatalog(cfg)
		if err != nil {
			log.Fatalw("failed to open storage", "error", err)
		}
		defer store.Close()

		engine := newEngine(cfg, newTMDBClient(cfg), collections.History)
		defer engine.Close()

		srv := server.New(log, catalog, engine)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

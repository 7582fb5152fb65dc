package cfg

import (
	"rawser/internal/domain/keys"
	"rawser/internal/models"
	"rawser/internal/server"
	"rawser/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for browser event ingestion and download control",
	RunE: func(cmd *cobra.Command, args []string) error {
		o, db, err := buildOrchestrator()
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				logging.E("Failed to close database: %v", err)
			}
		}()

		o.OnCandidateFound(func(url string, kind models.MediaKind) {
			logging.I("Candidate found [%s]: %s", kind, url)
		})
		o.Engine.OnComplete(func(taskID, path string) {
			logging.S("Download %s complete: %s", taskID, path)
		})

		return server.StartServer(o, viper.GetString(keys.ServePort))
	},
}

func init() {
	serveCmd.Flags().StringP(keys.ServePort, "p", server.DefaultPort, "Port to serve the HTTP API on")
	if err := viper.BindPFlag(keys.ServePort, serveCmd.Flags().Lookup(keys.ServePort)); err != nil {
		logging.E("Failed to bind flag %q: %v", keys.ServePort, err)
	}
}

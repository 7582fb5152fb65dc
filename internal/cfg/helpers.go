package cfg

import (
	"database/sql"
	"fmt"

	"rawser/internal/app"
	"rawser/internal/database"
	"rawser/internal/database/repo"
	"rawser/internal/domain/keys"
	"rawser/internal/downloads"

	"github.com/spf13/viper"
)

// buildOrchestrator assembles the orchestrator from Viper settings,
// opening the history database alongside it. The caller closes the
// returned database.
func buildOrchestrator() (*app.Orchestrator, *sql.DB, error) {
	opts := &downloads.Options{
		OutputDir:    viper.GetString(keys.OutputDir),
		FFmpegPath:   viper.GetString(keys.FFmpegPath),
		RateLimitBps: viper.GetInt64(keys.RateLimit),
		MaxRetries:   viper.GetInt(keys.MaxRetries),
	}

	dbPath := viper.GetString(keys.DBPath)
	if dbPath == "" {
		var err error
		if dbPath, err = database.DefaultPath(); err != nil {
			return nil, nil, err
		}
	}

	db, err := database.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}

	o := app.New(opts, repo.GetHistoryStore(db), viper.GetInt(keys.Concurrency))
	return o, db, nil
}

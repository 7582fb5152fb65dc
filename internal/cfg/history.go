package cfg

import (
	"fmt"
	"time"

	"rawser/internal/domain/keys"
	"rawser/internal/utils/logging"

	"github.com/araddon/dateparse"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past downloads",
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

		var since time.Time
		if raw := viper.GetString(keys.HistorySince); raw != "" {
			if since, err = dateparse.ParseAny(raw); err != nil {
				return fmt.Errorf("could not parse --since date %q: %w", raw, err)
			}
		}

		records, err := o.History.ListDownloads(cmd.Context(), since)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			color.Yellow("No downloads recorded")
			return nil
		}

		for _, rec := range records {
			line := fmt.Sprintf("%s  %-9s  %s", rec.CreatedAt.Format(time.DateTime), rec.Status, rec.URL)
			if rec.Error != "" {
				line += "  (" + rec.Error + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String(keys.HistorySince, "", "Only list downloads since this date (free-form, e.g. 2026-01-02 or \"Jan 2, 2026\")")
	if err := viper.BindPFlag(keys.HistorySince, historyCmd.Flags().Lookup(keys.HistorySince)); err != nil {
		logging.E("Failed to bind flag %q: %v", keys.HistorySince, err)
	}
}

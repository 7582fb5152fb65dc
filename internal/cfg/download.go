package cfg

import (
	"fmt"

	"rawser/internal/domain/keys"
	"rawser/internal/models"
	"rawser/internal/utils/logging"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

var downloadCmd = &cobra.Command{
	Use:   "download <url>",
	Short: "Download a media URL directly, with browser-faithful headers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]

		o, db, err := buildOrchestrator()
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				logging.E("Failed to close database: %v", err)
			}
		}()

		if viper.GetBool(keys.CookiesFromBrowser) {
			if _, err := o.Cookies.SeedForURL(cmd.Context(), url); err != nil {
				logging.W("Browser cookie seeding failed: %v", err)
			}
		}

		pbp := mpb.New(mpb.WithAutoRefresh(), mpb.WithOutput(color.Output))
		bar := pbp.New(100,
			mpb.BarStyle(),
			mpb.PrependDecorators(decor.Name("downloading ")),
			mpb.AppendDecorators(decor.Percentage()),
		)

		o.Engine.OnProgress(func(_ string, progress float64) {
			bar.SetCurrent(int64(progress * 100))
		})

		task := o.RequestDownload(cmd.Context(), url, viper.GetString(keys.Filename))

		bar.SetCurrent(100)
		bar.Abort(task.Status != models.DLStatusCompleted)
		pbp.Shutdown()

		if task.Status != models.DLStatusCompleted {
			return fmt.Errorf("download failed: %s", task.Error)
		}

		color.Green("Saved to %s", task.DestinationPath)
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringP(keys.Filename, "f", "", "Destination filename (derived from the URL when empty)")
	if err := viper.BindPFlag(keys.Filename, downloadCmd.Flags().Lookup(keys.Filename)); err != nil {
		logging.E("Failed to bind flag %q: %v", keys.Filename, err)
	}
}

// Package cfg wires Cobra commands and Viper settings for the Rawser
// CLI.
package cfg

import (
	"rawser/internal/domain/keys"
	"rawser/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "rawser",
	Short: "Rawser detects and downloads media from observed browser traffic",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(viper.GetInt(keys.DebugLevel), nil)
	},
}

// init sets the initial Viper settings.
func init() {
	pf := rootCmd.PersistentFlags()

	pf.StringP(keys.OutputDir, "o", "downloads", "Directory downloads are written to")
	pf.String(keys.FFmpegPath, "ffmpeg", "Path to the ffmpeg binary used for stream remuxing")
	pf.Int(keys.MaxRetries, 3, "Download retry attempts before giving up")
	pf.Int(keys.Concurrency, 3, "Maximum concurrent downloads")
	pf.Int64(keys.RateLimit, 0, "Direct download rate limit in bytes/second (0 = unlimited)")
	pf.Bool(keys.CookiesFromBrowser, false, "Seed cookies from browsers installed on this machine")
	pf.String(keys.DBPath, "", "History database path (default ~/.rawser/rawser.db)")
	pf.Int(keys.DebugLevel, 0, "Debug verbosity level")

	for _, key := range []string{
		keys.OutputDir, keys.FFmpegPath, keys.MaxRetries, keys.Concurrency,
		keys.RateLimit, keys.CookiesFromBrowser, keys.DBPath, keys.DebugLevel,
	} {
		if err := viper.BindPFlag(key, pf.Lookup(key)); err != nil {
			logging.E("Failed to bind flag %q: %v", key, err)
		}
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

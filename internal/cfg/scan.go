package cfg

import (
	"rawser/internal/scanner"
	"rawser/internal/utils/logging"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <page-url>",
	Short: "Scan a web page for downloadable media",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pageURL := args[0]

		o, db, err := buildOrchestrator()
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				logging.E("Failed to close database: %v", err)
			}
		}()

		if _, err := scanner.New(o.Registry).ScanPage(pageURL); err != nil {
			return err
		}

		candidates := o.Registry.All()
		if len(candidates) == 0 {
			color.Yellow("No media candidates found on %s", pageURL)
			return nil
		}

		for _, c := range candidates {
			color.Cyan("[%s] %s", c.Kind, c.URL)
		}
		return nil
	},
}

// Package keys holds Viper flag key names.
package keys

const (
	OutputDir          = "output-directory"
	FFmpegPath         = "ffmpeg-path"
	MaxRetries         = "dl-retries"
	Concurrency        = "concurrency-limit"
	RateLimit          = "rate-limit"
	CookiesFromBrowser = "cookies-from-browser"
	ServePort          = "port"
	DebugLevel         = "debug"
	HistorySince       = "since"
	DBPath             = "db-path"
	Filename           = "filename"
)

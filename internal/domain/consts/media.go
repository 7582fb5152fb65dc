// Package consts holds various global, unchanging values.
package consts

// SkipPatterns are URL substrings that short-circuit classification.
// High-volume noise (trackers, static assets) must never reach the
// media matching stages.
var SkipPatterns = [...]string{
	// Tracking / analytics.
	"google-analytics", "googletagmanager", "facebook.com/tr",
	"doubleclick", "googlesyndication", "analytics",
	"tracking", "beacon", "pixel", "telemetry",

	// Static assets.
	".js", ".css", ".woff", ".woff2", ".ttf", ".eot",
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico", ".webp",

	// Other.
	"favicon", "fonts.googleapis", "fonts.gstatic",
}

// AdPatterns is the smaller exclusion list applied inside the video
// stages, catching ad-served media files that slipped past SkipPatterns.
var AdPatterns = [...]string{
	"googleads", "doubleclick", "facebook.com/tr",
	"analytics", "tracking", "beacon", "pixel",
}

// VideoExtensions are direct-download video container extensions.
var VideoExtensions = [...]string{".mp4", ".mov", ".m4v"}

// AudioExtensions are direct-download audio container extensions.
var AudioExtensions = [...]string{".mp3", ".m4a", ".aac", ".ogg", ".wav", ".flac"}

// Content-type markers for the direct video stage.
const (
	ContentTypeMP4       = "video/mp4"
	ContentTypeQuicktime = "video/quicktime"
)

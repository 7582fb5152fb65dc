package consts

// Outbound header names.
const (
	HAccept         = "Accept"
	HAcceptEncoding = "Accept-Encoding"
	HAcceptLanguage = "Accept-Language"
	HConnection     = "Connection"
	HContentLength  = "Content-Length"
	HCookie         = "Cookie"
	HOrigin         = "Origin"
	HReferer        = "Referer"
	HSecFetchDest   = "Sec-Fetch-Dest"
	HSecFetchMode   = "Sec-Fetch-Mode"
	HSecFetchSite   = "Sec-Fetch-Site"
	HUserAgent      = "User-Agent"
)

// Browser identity defaults. Sent on every download so servers see an
// ordinary Chrome media fetch.
const (
	BrowserUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	BrowserAccept         = "*/*"
	BrowserAcceptLanguage = "en-US,en;q=0.9"
	BrowserAcceptEncoding = "gzip, deflate, br"
	BrowserConnection     = "keep-alive"
	MediaFetchDest        = "video"
	MediaFetchMode        = "no-cors"
	MediaFetchSite        = "cross-site"
)

package cfg

// Cfg holds the resolved application configuration.
type Cfg struct {
	FeedURL          string
	ImageBaseURL     string
	DocumentCDNURL   string
	OutputDir        string
	DefaultThumbnail string

	UserAgent string
	Timeout   int

	DryRun  bool
	Debug   bool
	Version string
}

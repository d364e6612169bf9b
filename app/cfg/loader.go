package cfg

import (
	"cmp"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

const (
	defaultFeedURL        = "https://update.kcc.edu/feed/update.json"
	defaultImageBaseURL   = "https://update.kcc.edu/feed/images/"
	defaultDocumentCDNURL = "https://cdn.kcc.edu/update-documents/"
	defaultOutputDir      = "./dist/dec"
	defaultThumbnailFile  = "kcc-blue-100x100.svg"
	defaultUserAgent      = "Update Publisher/1.0"
	defaultTimeout        = 30
)

type rawCfg struct {
	SettingsFile string `long:"settings" env:"SETTINGS_FILE" description:"Path to an optional YAML settings file"`

	FeedURL          string `long:"feed-url" env:"FEED_URL" description:"URL of the update feed JSON document"`
	ImageBaseURL     string `long:"image-base-url" env:"IMAGE_BASE_URL" description:"Public base URL for feed images"`
	DocumentCDNURL   string `long:"document-cdn-url" env:"DOCUMENT_CDN_URL" description:"Public base URL for shared documents"`
	OutputDir        string `long:"output-dir" env:"OUTPUT_DIR" description:"Directory the generated posts are written to"`
	DefaultThumbnail string `long:"default-thumbnail" env:"DEFAULT_THUMBNAIL" description:"Placeholder image file used when an item has no thumbnail"`

	UserAgent string `long:"user-agent" env:"USER_AGENT" description:"User agent string for HTTP requests"`
	Timeout   int    `long:"timeout" env:"TIMEOUT" description:"Feed fetch timeout in seconds"`

	DryRun bool `long:"dry-run" env:"DRY_RUN" description:"Report what would be written without touching the filesystem"`
	Debug  bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

type settingsFile struct {
	FeedURL          string `yaml:"feed_url"`
	ImageBaseURL     string `yaml:"image_base_url"`
	DocumentCDNURL   string `yaml:"document_cdn_url"`
	OutputDir        string `yaml:"output_dir"`
	DefaultThumbnail string `yaml:"default_thumbnail"`
	UserAgent        string `yaml:"user_agent"`
	Timeout          int    `yaml:"timeout"`
}

// Load resolves configuration in precedence order: command-line flags
// and environment variables, then the settings file, then built-in
// defaults. A nil Cfg with a nil error means help was shown.
func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	var settings settingsFile
	if raw.SettingsFile != "" {
		if err := loadSettingsFile(raw.SettingsFile, &settings); err != nil {
			return nil, err
		}
	}

	cfg := &Cfg{
		FeedURL:          cmp.Or(raw.FeedURL, settings.FeedURL, defaultFeedURL),
		ImageBaseURL:     cmp.Or(raw.ImageBaseURL, settings.ImageBaseURL, defaultImageBaseURL),
		DocumentCDNURL:   cmp.Or(raw.DocumentCDNURL, settings.DocumentCDNURL, defaultDocumentCDNURL),
		OutputDir:        cmp.Or(raw.OutputDir, settings.OutputDir, defaultOutputDir),
		DefaultThumbnail: cmp.Or(raw.DefaultThumbnail, settings.DefaultThumbnail, defaultThumbnailFile),
		UserAgent:        cmp.Or(raw.UserAgent, settings.UserAgent, defaultUserAgent),
		Timeout:          cmp.Or(raw.Timeout, settings.Timeout, defaultTimeout),
		DryRun:           raw.DryRun,
		Debug:            raw.Debug,
		Version:          GetVersion(),
	}

	return cfg, nil
}

func loadSettingsFile(path string, settings *settingsFile) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return nil
}

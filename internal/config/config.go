// Package config loads the YAML run configuration.
//
// Credentials are deliberately not part of the file: the command reads
// them from the environment and passes them to the notifier constructor,
// so the config file can live in the repository next to the scheduler
// workflow.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Publishing channels.
const (
	ChannelFacebook = "facebook"
	ChannelTwitter  = "twitter"
	ChannelDryRun   = "dryrun"
)

const (
	// DefaultSeriesURL is the info page of the current TFK Seriespill
	// season on DiscGolfMetrix.
	DefaultSeriesURL = "https://discgolfmetrix.com/3272824&view=info"

	// DefaultTimezone is the zone the series is played in. "Tomorrow"
	// is computed against this zone, not the host clock's.
	DefaultTimezone = "Europe/Oslo"
)

// Config is the run configuration for one announcement pass.
type Config struct {
	// SeriesURL is the Metrix series info page to scrape.
	SeriesURL string `yaml:"series_url"`

	// Timezone is the IANA zone used to compute "tomorrow" and to
	// interpret the listing timestamps (e.g. "Europe/Oslo").
	Timezone string `yaml:"timezone"`

	// Channel selects the publishing target: "facebook", "twitter" or
	// "dryrun".
	Channel string `yaml:"channel"`

	// UserAgent overrides the browser user-agent sent to Metrix.
	UserAgent string `yaml:"user_agent"`

	// GraphVersion is the Facebook Graph API version (e.g. "v23.0").
	GraphVersion string `yaml:"graph_version"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		SeriesURL: DefaultSeriesURL,
		Timezone:  DefaultTimezone,
		Channel:   ChannelFacebook,
	}
}

// Normalize fills in missing values so that a partially-filled config
// still behaves correctly. Unknown channel values are left as-is and
// rejected when the notifier is built, never silently rewritten to a
// posting channel.
func (c *Config) Normalize() {
	if c.SeriesURL == "" {
		c.SeriesURL = DefaultSeriesURL
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.Channel == "" {
		c.Channel = ChannelFacebook
	}
}

// Load loads configuration from the given YAML path. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

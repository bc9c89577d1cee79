package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.SeriesURL != DefaultSeriesURL {
		t.Errorf("expected default series URL, got %q", cfg.SeriesURL)
	}
	if cfg.Timezone != DefaultTimezone {
		t.Errorf("expected default timezone, got %q", cfg.Timezone)
	}
	if cfg.Channel != ChannelFacebook {
		t.Errorf("expected facebook channel, got %q", cfg.Channel)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.SeriesURL != DefaultSeriesURL {
		t.Errorf("expected default series URL, got %q", cfg.SeriesURL)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `series_url: https://discgolfmetrix.com/9999999&view=info
timezone: Europe/Oslo
channel: dryrun
graph_version: v20.0
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.SeriesURL != "https://discgolfmetrix.com/9999999&view=info" {
		t.Errorf("unexpected series URL: %q", cfg.SeriesURL)
	}
	if cfg.Channel != ChannelDryRun {
		t.Errorf("unexpected channel: %q", cfg.Channel)
	}
	if cfg.GraphVersion != "v20.0" {
		t.Errorf("unexpected graph version: %q", cfg.GraphVersion)
	}
}

func TestLoad_PartialFileNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("channel: twitter\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Channel != ChannelTwitter {
		t.Errorf("unexpected channel: %q", cfg.Channel)
	}
	if cfg.SeriesURL != DefaultSeriesURL {
		t.Errorf("expected default series URL filled in, got %q", cfg.SeriesURL)
	}
	if cfg.Timezone != DefaultTimezone {
		t.Errorf("expected default timezone filled in, got %q", cfg.Timezone)
	}
}

func TestNormalize_UnknownChannelKept(t *testing.T) {
	cfg := &Config{Channel: "carrier-pigeon"}
	cfg.Normalize()

	// Unknown channels must not be rewritten to a real posting channel;
	// the command rejects them when building the notifier.
	if cfg.Channel != "carrier-pigeon" {
		t.Errorf("unknown channel was rewritten to %q", cfg.Channel)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("series_url: [broken\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestLocation(t *testing.T) {
	cfg := Default()
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location() unexpected error: %v", err)
	}
	if loc.String() != "Europe/Oslo" {
		t.Errorf("unexpected location: %s", loc)
	}

	cfg.Timezone = "Middle/Nowhere"
	if _, err := cfg.Location(); err == nil {
		t.Fatal("expected error for unknown timezone, got nil")
	}
}

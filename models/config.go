package models

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the archive engine. Values come
// from an optional YAML file with defaults suitable for WFMU; the listen
// port can be overridden through the PORT environment variable.
type Config struct {
	ScheduleURL string `yaml:"schedule_url"`
	FeedURL     string `yaml:"feed_url"`

	StationName string `yaml:"station_name"`
	// AliasName is the second permanent key. The calling platform maps the
	// ambiguous station phrase to this generic term, so both keys must
	// resolve to the live stream.
	AliasName       string `yaml:"alias_name"`
	LiveStreamURL   string `yaml:"live_stream_url"`
	LiveDescription string `yaml:"live_description"`
	ArchiveLabel    string `yaml:"archive_label"`
	LogoURL         string `yaml:"logo_url"`

	Port              int `yaml:"port"`
	WorkerCount       int `yaml:"worker_count"`
	RefreshMinutes    int `yaml:"refresh_minutes"`
	MaxArchiveAgeDays int `yaml:"max_archive_age_days"`

	HistoryDBPath string `yaml:"history_db_path"`
}

// RefreshInterval is how often the feed-sourced refresh runs.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshMinutes) * time.Minute
}

// MaxArchiveAge is the window after which a scraped archive is presumed to
// have an expired media URL and is excluded from approximate matching.
func (c *Config) MaxArchiveAge() time.Duration {
	return time.Duration(c.MaxArchiveAgeDays) * 24 * time.Hour
}

// DefaultConfig returns the built-in WFMU configuration.
func DefaultConfig() *Config {
	return &Config{
		ScheduleURL:     "https://wfmu.org/archiveplayers",
		FeedURL:         "https://wfmu.org/archivefeed/mp3.xml",
		StationName:     "wfmu",
		AliasName:       "radio station",
		LiveStreamURL:   "https://stream0.wfmu.org/freeform-128k",
		LiveDescription: "WFMU 91.1 FM, freeform radio from Jersey City",
		ArchiveLabel:    "WFMU MP3 archive",
		LogoURL:         "https://wfmu.org/images/square_logo.png",

		Port:              8080,
		WorkerCount:       4,
		RefreshMinutes:    60,
		MaxArchiveAgeDays: 30,
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
// A missing file is not an error; the defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// ListenAddr returns the listen address, honoring a PORT environment
// override over the configured port.
func (c *Config) ListenAddr() string {
	port := c.Port
	if env := os.Getenv("PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}
	return fmt.Sprintf(":%d", port)
}

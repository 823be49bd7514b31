package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	errs "libcal-hours-export/pkg/errors"
)

// Config holds runtime configuration sourced from the environment (plus .env
// via godotenv autoload in main). CLI flags (output file, date range) are
// handled separately by the command layer.
type Config struct {
	// LibCal API credentials and endpoints
	ClientID     string
	ClientSecret string
	LocationIDs  string // comma-separated LIDs, appended to the hours URL path
	HoursURL     string
	OAuthURL     string

	// HTTP client settings
	HTTPTimeout time.Duration

	// Optional reporting-database sink
	WarehouseDSN   string
	DBWriteTimeout time.Duration
	DBMaxOpenConns int

	// Optional YAML locations file: overrides LocationIDs and supplies
	// display-name overrides for the output
	LocationsFile string

	// Logging
	Debug     bool
	LogLevel  string
	LogFormat string // "json" or "text"

	// Display-name overrides by LID, loaded from LocationsFile
	Rename map[int64]string
}

// Load reads configuration from the environment. It never fails; call
// Validate before doing any work.
func Load() *Config {
	httpTimeout, _ := time.ParseDuration(getEnv("LIBCAL_HOURS_HTTP_TIMEOUT", "30s"))
	dbWriteTO, _ := time.ParseDuration(getEnv("LIBCAL_HOURS_DB_WRITE_TIMEOUT", "30s"))
	dbMaxOpen, _ := strconv.Atoi(getEnv("LIBCAL_HOURS_DB_MAX_OPEN_CONNS", "5"))
	debug, _ := strconv.ParseBool(getEnv("LIBCAL_HOURS_DEBUG", "false"))

	logLevel := getEnv("LOG_LEVEL", "info")
	if debug {
		logLevel = "debug"
	}

	return &Config{
		ClientID:     getEnv("LIBCAL_HOURS_CLIENT_ID", ""),
		ClientSecret: getEnv("LIBCAL_HOURS_CLIENT_SECRET", ""),
		LocationIDs:  getEnv("LIBCAL_HOURS_LOCATION_IDS", ""),
		HoursURL:     getEnv("LIBCAL_HOURS_URL", ""),
		OAuthURL:     getEnv("LIBCAL_HOURS_OAUTH_URL", ""),

		HTTPTimeout: httpTimeout,

		WarehouseDSN:   getEnv("LIBCAL_HOURS_DB_DSN", ""),
		DBWriteTimeout: dbWriteTO,
		DBMaxOpenConns: dbMaxOpen,

		LocationsFile: getEnv("LIBCAL_HOURS_LOCATIONS_FILE", ""),

		Debug:     debug,
		LogLevel:  logLevel,
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// locationsFile is the on-disk shape of the optional YAML locations file:
//
//	location_ids:
//	  - 123
//	  - 456
//	rename:
//	  123: McKeldin Library
type locationsFile struct {
	LocationIDs []int64          `yaml:"location_ids"`
	Rename      map[int64]string `yaml:"rename"`
}

// ApplyLocationsFile reads the YAML locations file, if configured, and merges
// it into the config: its id list replaces LocationIDs, its rename map is
// kept for the row builder.
func (c *Config) ApplyLocationsFile() error {
	if c.LocationsFile == "" {
		return nil
	}

	data, err := os.ReadFile(c.LocationsFile)
	if err != nil {
		return errs.NewConfig("config.ApplyLocationsFile", "cannot read locations file", err)
	}

	var lf locationsFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return errs.NewConfig("config.ApplyLocationsFile", "cannot parse locations file", err)
	}

	if len(lf.LocationIDs) > 0 {
		ids := make([]string, len(lf.LocationIDs))
		for i, id := range lf.LocationIDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		c.LocationIDs = strings.Join(ids, ",")
	}
	c.Rename = lf.Rename

	return nil
}

// Validate checks that every required setting is present. The run must abort
// before any network call when this fails.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"LIBCAL_HOURS_CLIENT_ID", c.ClientID},
		{"LIBCAL_HOURS_CLIENT_SECRET", c.ClientSecret},
		{"LIBCAL_HOURS_LOCATION_IDS", c.LocationIDs},
		{"LIBCAL_HOURS_URL", c.HoursURL},
		{"LIBCAL_HOURS_OAUTH_URL", c.OAuthURL},
	}
	for _, r := range required {
		if r.value == "" {
			return errs.NewConfig("config.Validate",
				fmt.Sprintf("must provide environment variable: %s", r.name), nil)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

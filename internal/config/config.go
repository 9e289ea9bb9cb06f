package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "RB"

// Config holds runtime settings shared by every command.
type Config struct {
	DataDir   string `envconfig:"DATA_DIR" default:"data" validate:"required"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console" validate:"oneof=json console"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s" validate:"gt=0"`
	Throttle    time.Duration `envconfig:"THROTTLE" default:"300ms" validate:"gte=0"`
	UserAgent   string        `envconfig:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0 Safari/537.36" validate:"required"`

	ESPNSiteBase string `envconfig:"ESPN_SITE_BASE" default:"https://site.api.espn.com/apis/site/v2/sports/football/nfl" validate:"url"`
	ESPNCoreBase string `envconfig:"ESPN_CORE_BASE" default:"https://sports.core.api.espn.com/v2/sports/football/leagues/nfl" validate:"url"`
	OTCURL       string `envconfig:"OTC_URL" default:"https://overthecap.com/contract-history/running-back" validate:"url"`
	PFRURL       string `envconfig:"PFR_URL" default:"https://www.pro-football-reference.com/years/%d/rushing.htm" validate:"required"`

	Threshold int `envconfig:"THRESHOLD" default:"70" validate:"min=1"`

	RedisURL    string        `envconfig:"REDIS_URL" validate:"omitempty,url"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"0s" validate:"gte=0"`
	StageStream string        `envconfig:"STAGE_STREAM" default:"rb70.pipeline.stages" validate:"required"`

	DatabaseDSN string `envconfig:"DATABASE_DSN"`
}

// Load reads RB_* environment variables and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "load config from env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Paths returns the stage file layout rooted at DataDir.
func (c Config) Paths() Paths {
	return NewPaths(c.DataDir)
}

// Paths names every file a pipeline stage reads or writes.
type Paths struct {
	DataDir string

	Historical     string
	CurrentRaw     string
	Current        string
	RushingFull    string
	RB70           string
	RB70Names      string
	ContractsRaw   string
	ContractsRB70  string
	Master         string
	MasterXLSX     string
	TeamStatsTable string
}

func NewPaths(dataDir string) Paths {
	join := func(name string) string { return filepath.Join(dataDir, name) }
	return Paths{
		DataDir:        dataDir,
		Historical:     join("rushing_cleaned.csv"),
		CurrentRaw:     join("rb_rushing_2024_raw.csv"),
		Current:        join("rb_rushing_2024.csv"),
		RushingFull:    join("rb_rushing_2001_2024_full.csv"),
		RB70:           join("rb_rushing_2001_2024_rb70.csv"),
		RB70Names:      join("rb_rushing_2001_2024_rb70_names.csv"),
		ContractsRaw:   join("otc_rb_contracts_raw.csv"),
		ContractsRB70:  join("otc_rb_contracts_rb70.csv"),
		Master:         join("rb_analysis_master.csv"),
		MasterXLSX:     join("rb_analysis_master.xlsx"),
		TeamStatsTable: join("espn_team_stats_all.csv"),
	}
}

// TeamStatsSeason is the per-season ESPN document path.
func (p Paths) TeamStatsSeason(season int) string {
	return filepath.Join(p.DataDir, fmt.Sprintf("espn_team_stats_%d.json", season))
}

// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/studyplan/internal/scheduler"
)

type Config struct {
	DBPath      string
	CatalogPath string
	UserID      string
	LogUseCases bool

	MinHorizonDays      int
	FeasibleThreshold   int
	StrictPrerequisites bool
}

// DefaultConfig stores data under ~/.studyplan and uses the built-in
// catalog and default planning policy.
func DefaultConfig() Config {
	policy := scheduler.DefaultPlanningPolicy()
	return Config{
		DBPath:            defaultDBPath(),
		UserID:            defaultUserID(),
		MinHorizonDays:    policy.MinHorizonDays,
		FeasibleThreshold: policy.FeasibleThreshold,
	}
}

// Load reads STUDYPLAN_* variables over DefaultConfig. Values that fail to
// parse or fall outside their range are ignored.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STUDYPLAN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("STUDYPLAN_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("STUDYPLAN_USER"); v != "" {
		cfg.UserID = v
	}
	if v := os.Getenv("STUDYPLAN_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STUDYPLAN_MIN_HORIZON_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MinHorizonDays = n
		}
	}
	if v := os.Getenv("STUDYPLAN_FEASIBLE_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 100 {
			cfg.FeasibleThreshold = n
		}
	}
	if v := os.Getenv("STUDYPLAN_STRICT_PREREQUISITES"); v != "" {
		cfg.StrictPrerequisites, _ = strconv.ParseBool(v)
	}

	return cfg
}

// Policy returns the planning policy with this config's overrides applied.
func (c Config) Policy() scheduler.PlanningPolicy {
	p := scheduler.DefaultPlanningPolicy()
	p.MinHorizonDays = c.MinHorizonDays
	p.FeasibleThreshold = c.FeasibleThreshold
	p.StrictPrerequisites = c.StrictPrerequisites
	return p
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".studyplan", "studyplan.db")
	}
	return filepath.Join(home, ".studyplan", "studyplan.db")
}

func defaultUserID() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

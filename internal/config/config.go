// Package config handles loading studyflow.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Defaults applied when neither config file defines a value.
const (
	DefaultHoursPerDay  = 8.0
	DefaultWeeklyGoal   = 2400 // minutes, 40 hours
	DefaultDailyAverage = 180  // minutes, 3 hours
)

// Config represents the studyflow.toml configuration file.
type Config struct {
	Planner Planner `toml:"planner"`
	Goals   Goals   `toml:"goals"`
}

// Planner contains scheduling configuration.
type Planner struct {
	// HoursPerDay is the daily time budget handed to the scheduler.
	HoursPerDay float64 `toml:"hours-per-day"`
}

// Goals contains study-goal configuration used by analytics.
type Goals struct {
	// WeeklyMinutes is the weekly study goal in minutes.
	WeeklyMinutes int `toml:"weekly-minutes"`

	// DailyMinutes is the expected daily study average in minutes.
	DailyMinutes int `toml:"daily-minutes"`
}

// Load loads configuration from the working directory and the global
// config file, with project values taking precedence. Missing files
// contribute defaults.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, "studyflow.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "studyflow", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Planner.HoursPerDay = mergeFloat(
		projectMeta.IsDefined("planner", "hours-per-day"), projectCfg.Planner.HoursPerDay,
		globalMeta.IsDefined("planner", "hours-per-day"), globalCfg.Planner.HoursPerDay,
		DefaultHoursPerDay)
	merged.Goals.WeeklyMinutes = mergeInt(
		projectMeta.IsDefined("goals", "weekly-minutes"), projectCfg.Goals.WeeklyMinutes,
		globalMeta.IsDefined("goals", "weekly-minutes"), globalCfg.Goals.WeeklyMinutes,
		DefaultWeeklyGoal)
	merged.Goals.DailyMinutes = mergeInt(
		projectMeta.IsDefined("goals", "daily-minutes"), projectCfg.Goals.DailyMinutes,
		globalMeta.IsDefined("goals", "daily-minutes"), globalCfg.Goals.DailyMinutes,
		DefaultDailyAverage)

	return &merged
}

func mergeFloat(projectDefined bool, projectValue float64, globalDefined bool, globalValue float64, fallback float64) float64 {
	if projectDefined {
		return projectValue
	}
	if globalDefined {
		return globalValue
	}
	return fallback
}

func mergeInt(projectDefined bool, projectValue int, globalDefined bool, globalValue int, fallback int) int {
	if projectDefined {
		return projectValue
	}
	if globalDefined {
		return globalValue
	}
	return fallback
}

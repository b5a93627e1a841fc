// Package config resolves runtime settings from the environment and
// loads campaign plan files from disk.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type RuntimeConfig struct {
	DatabasePath   string
	ProfilePath    string
	Viewer         string
	HorizonWeeks   int
	ReplanInterval time.Duration
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DatabasePath:   "rollout.db",
		ProfilePath:    "plan.yaml",
		Viewer:         "",
		HorizonWeeks:   8,
		ReplanInterval: 30 * time.Minute,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("ROLLOUT_DB"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := getEnvString("ROLLOUT_PROFILE"); ok {
		cfg.ProfilePath = v
	}
	if v, ok := getEnvString("ROLLOUT_VIEWER"); ok {
		cfg.Viewer = v
	}
	if v, ok := getEnvInt("ROLLOUT_HORIZON_WEEKS"); ok && v > 0 {
		cfg.HorizonWeeks = v
	}
	if v, ok := getEnvDuration("ROLLOUT_REPLAN_INTERVAL"); ok && v > 0 {
		cfg.ReplanInterval = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvDuration(name string) (time.Duration, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

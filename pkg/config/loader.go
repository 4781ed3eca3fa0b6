package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// WexYAMLConfig represents the complete wex.yaml file structure. Every
// section is optional; absent sections fall back to built-in defaults.
type WexYAMLConfig struct {
	System        *SystemConfig        `yaml:"system"`
	Clearing      *ClearingConfig      `yaml:"clearing"`
	Pricing       *PricingConfig       `yaml:"pricing"`
	DLA           *DLAConfig           `yaml:"dla"`
	UseTypes      *UseTypeConfig       `yaml:"use_types"`
	SMS           *SMSConfig           `yaml:"sms"`
	Scheduler     *SchedulerConfig     `yaml:"scheduler"`
	Queue         *QueueConfig         `yaml:"queue"`
	Geo           *GeoConfig           `yaml:"geo"`
	LLM           *LLMConfig           `yaml:"llm"`
	Notifications *NotificationsConfig `yaml:"notifications"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load wex.yaml from configDir (absent file means pure defaults)
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Parse YAML into section structs
//  4. Merge user sections over built-in defaults
//  5. Validate the merged result
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized",
		"tier1_cap", cfg.Clearing.MaxTier1,
		"use_types", len(cfg.UseTypes.NeedSets),
		"activity_tiers", len(cfg.UseTypes.CapabilitySets),
		"workers", cfg.Queue.WorkerCount,
		"llm_model", cfg.LLM.Model)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.configDir = configDir

	userCfg, err := loadWexYAML(configDir)
	if err != nil {
		return nil, NewLoadError("wex.yaml", err)
	}
	if userCfg == nil {
		slog.Info("No wex.yaml found, using built-in defaults")
		return cfg, nil
	}

	// Merge each user section over the matching defaults. Non-zero user
	// values win; unset fields keep their defaults.
	sections := []struct {
		name string
		dst  any
		src  any
	}{
		{"system", cfg.System, userCfg.System},
		{"clearing", cfg.Clearing, userCfg.Clearing},
		{"pricing", cfg.Pricing, userCfg.Pricing},
		{"dla", cfg.DLA, userCfg.DLA},
		{"use_types", cfg.UseTypes, userCfg.UseTypes},
		{"sms", cfg.SMS, userCfg.SMS},
		{"scheduler", cfg.Scheduler, userCfg.Scheduler},
		{"queue", cfg.Queue, userCfg.Queue},
		{"geo", cfg.Geo, userCfg.Geo},
		{"llm", cfg.LLM, userCfg.LLM},
		{"notifications", cfg.Notifications, userCfg.Notifications},
	}
	for _, s := range sections {
		if isNilSection(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s config: %w", s.name, err)
		}
	}

	return cfg, nil
}

func isNilSection(src any) bool {
	switch v := src.(type) {
	case *SystemConfig:
		return v == nil
	case *ClearingConfig:
		return v == nil
	case *PricingConfig:
		return v == nil
	case *DLAConfig:
		return v == nil
	case *UseTypeConfig:
		return v == nil
	case *SMSConfig:
		return v == nil
	case *SchedulerConfig:
		return v == nil
	case *QueueConfig:
		return v == nil
	case *GeoConfig:
		return v == nil
	case *LLMConfig:
		return v == nil
	case *NotificationsConfig:
		return v == nil
	}
	return src == nil
}

// loadWexYAML reads and parses wex.yaml. A missing file returns (nil, nil);
// any other read or parse failure is an error.
func loadWexYAML(configDir string) (*WexYAMLConfig, error) {
	path := filepath.Join(configDir, "wex.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing the YAML parser to handle the content (or fail with a clearer
	// error message).
	data = ExpandEnv(data)

	var cfg WexYAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &cfg, nil
}

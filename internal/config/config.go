// SPDX-License-Identifier: MIT

// Package config loads campusnet settings.
//
// Sources, lowest priority first:
//
//  1. Defaults (Default).
//  2. A YAML file: the path given to Load, else $CAMPUSNET_CONFIG.
//  3. A .env file in the working directory, if present.
//  4. CAMPUSNET_* environment variables.
//
// The result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CAMPUSNET_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full campusnet configuration.
type Config struct {
	// DataFile is a student dataset to load; empty runs the built-in samples.
	DataFile string `yaml:"data_file"`

	// Company is the internship target for referral searches.
	Company string `yaml:"company" validate:"required"`

	// Strategy names the referral strategy.
	Strategy string `yaml:"strategy" validate:"oneof=strongest fewest-hops"`

	// MaxHops caps referral chain length in edges; 0 means unlimited.
	MaxHops int `yaml:"max_hops" validate:"gte=0"`

	// MaxProposals caps roommate proposals; 0 means unlimited.
	MaxProposals int `yaml:"max_proposals" validate:"gte=0"`

	Log    LogConfig    `yaml:"log"`
	Social SocialConfig `yaml:"social"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Mode  string `yaml:"mode" validate:"oneof=development dev production prod nop off"`
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// SocialConfig tunes the social activity demo.
type SocialConfig struct {
	FriendLatency time.Duration `yaml:"friend_latency" validate:"gte=0"`
	ChatLatency   time.Duration `yaml:"chat_latency" validate:"gte=0"`
	Timeout       time.Duration `yaml:"timeout" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Company:  "DummyCompany",
		Strategy: "strongest",
		Log:      LogConfig{Mode: "development", Level: "info"},
		Social: SocialConfig{
			FriendLatency: 50 * time.Millisecond,
			ChatLatency:   30 * time.Millisecond,
			Timeout:       5 * time.Second,
		},
	}
}

// Load assembles the configuration from every source.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := Default()
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvPrefix + "CONFIG"))
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: open %s: %w", path, err)
		}
		defer f.Close()
		if err = Decode(f, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode overlays YAML from r onto cfg. Unknown keys are rejected.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// loadDotEnv reads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	return nil
}

// ApplyEnv overlays CAMPUSNET_* variables onto cfg.
func ApplyEnv(cfg *Config) error {
	str := map[string]*string{
		"DATA_FILE": &cfg.DataFile,
		"COMPANY":   &cfg.Company,
		"STRATEGY":  &cfg.Strategy,
		"LOG_MODE":  &cfg.Log.Mode,
		"LOG_LEVEL": &cfg.Log.Level,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	dur := map[string]*time.Duration{
		"FRIEND_LATENCY": &cfg.Social.FriendLatency,
		"CHAT_LATENCY":   &cfg.Social.ChatLatency,
		"SOCIAL_TIMEOUT": &cfg.Social.Timeout,
	}
	for key, dst := range dur {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
		}
		*dst = d
	}

	if v, ok := lookup("MAX_HOPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sMAX_HOPS: %w", EnvPrefix, err)
		}
		cfg.MaxHops = n
	}
	if v, ok := lookup("MAX_PROPOSALS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sMAX_PROPOSALS: %w", EnvPrefix, err)
		}
		cfg.MaxProposals = n
	}

	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)

	return v, v != ""
}

var validate = validator.New()

// Validate checks cfg against its struct tags.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

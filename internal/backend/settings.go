// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package backend

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/staranto/tabctl/internal/config"
)

// Settings selects and configures a backend. Values come from the backend:
// block of the config file, then the environment; flags are applied by the
// caller on top.
type Settings struct {
	Type      string `yaml:"type" env:"TABCTL_BACKEND"`
	Path      string `yaml:"path" env:"TABCTL_BACKEND_PATH"`
	DSN       string `yaml:"dsn" env:"TABCTL_DSN"`
	Bucket    string `yaml:"bucket" env:"TABCTL_S3_BUCKET"`
	Region    string `yaml:"region" env:"TABCTL_S3_REGION"`
	Profile   string `yaml:"profile" env:"TABCTL_S3_PROFILE"`
	Endpoint  string `yaml:"endpoint" env:"TABCTL_S3_ENDPOINT"`
	Prefix    string `yaml:"prefix" env:"TABCTL_S3_PREFIX"`
	PathStyle bool   `yaml:"path_style" env:"TABCTL_S3_PATH_STYLE"`
	// MaxAttempts caps S3 request retries.
	MaxAttempts int `yaml:"max_attempts" env:"TABCTL_S3_MAX_ATTEMPTS"`
	// AccessKeyID and SecretAccessKey are for S3-compatible stores. AWS
	// itself should use the credential chain (profile, env, IMDS).
	AccessKeyID     string `yaml:"access_key_id" env:"TABCTL_S3_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"TABCTL_S3_SECRET_ACCESS_KEY"`
}

// LoadSettings resolves Settings from config and environment.
func LoadSettings() (Settings, error) {
	s := Settings{Type: "file"}

	if err := config.Decode("backend", &s); err != nil && !errors.Is(err, config.ErrNotFound) {
		return s, err
	}

	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}

	return s, nil
}

// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package config marshals settings objects for the external configuration
// service. It is plumbing around the persistence passes, not part of them.
package config

import (
	"gopkg.in/yaml.v3"

	"grimm.is/nicpin/internal/errors"
)

// Settings is the configuration object handed to the configuration service.
type Settings struct {
	Root      string `yaml:"root"`
	KargsFile string `yaml:"kargs_file,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
}

// DefaultSettings returns the settings for reconciling the live system.
func DefaultSettings() Settings {
	return Settings{
		Root:     "/",
		LogLevel: "info",
	}
}

// Marshal encodes settings for the configuration service.
func Marshal(s Settings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "encoding settings")
	}
	return data, nil
}

// Unmarshal decodes settings received from the configuration service.
func Unmarshal(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Wrap(err, errors.KindValidation, "decoding settings")
	}
	return s, nil
}

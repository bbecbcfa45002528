// SPDX-License-Identifier: MPL-2.0

// Package config loads the optional driver configuration: defaults for
// the installation layout and the toplevel image, from a config file and
// the COQLIB/COQBIN environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"coqc-cli/pkg/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "coqc"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// Config holds the driver's file- and environment-sourced defaults.
// Command-line flags always take precedence over every field here.
type Config struct {
	// Coqlib is the standard library directory. Empty means compute it
	// from the installation layout.
	Coqlib string

	// Coqbin is the directory holding the toplevel binaries. Empty
	// means the directory of the running executable.
	Coqbin string

	// Image is a default toplevel override, same meaning as -image.
	Image string

	// Bytecode prefers the bytecode toplevel when true. Only honored
	// when BytecodeSet is true.
	Bytecode bool

	// BytecodeSet records whether the bytecode key was present at all.
	BytecodeSet bool

	// FileUsed is the path of the config file that was read, empty if
	// no file was found.
	FileUsed string
}

// ConfigDir returns the coqc configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the config file and the COQLIB/COQBIN environment variables.
// A missing config file is not an error. When the file exists but cannot
// be parsed, Load returns defaults together with the parse error so the
// caller can warn and continue.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)

	dir, err := ConfigDir()
	if err != nil {
		return defaultConfig(), err
	}
	v.AddConfigPath(dir)

	// Environment wins over the file for the installation paths.
	if err := v.BindEnv("coqlib", "COQLIB"); err != nil {
		return defaultConfig(), err
	}
	if err := v.BindEnv("coqbin", "COQBIN"); err != nil {
		return defaultConfig(), err
	}

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			readErr = fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Coqlib:      v.GetString("coqlib"),
		Coqbin:      v.GetString("coqbin"),
		Image:       v.GetString("image"),
		Bytecode:    v.GetBool("bytecode"),
		BytecodeSet: v.IsSet("bytecode"),
		FileUsed:    v.ConfigFileUsed(),
	}
	if readErr != nil {
		// Keep only the environment-sourced values on a parse failure.
		cfg.Image = ""
		cfg.Bytecode = false
		cfg.BytecodeSet = false
		cfg.FileUsed = ""
	}

	return cfg, readErr
}

func defaultConfig() *Config {
	return &Config{
		Coqlib: os.Getenv("COQLIB"),
		Coqbin: os.Getenv("COQBIN"),
	}
}

/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is where the dashboard looks for its config file.
	DefaultPath = "/etc/goesradar/config.json"

	// EnvPrefix prefixes environment overrides, e.g. GOESRADAR_SATELLITE.
	EnvPrefix = "GOESRADAR"

	FlagConfig    = "config"
	FlagPort      = "port"
	FlagLogLevel  = "log-level"
	FlagStaticDir = "static-dir"
)

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	FlagPort:      "dashboard_port",
	FlagLogLevel:  "log_level",
	FlagStaticDir: "static_dir",
}

// RegisterFlags adds the dashboard flags to flagSet.
func RegisterFlags(flagSet *pflag.FlagSet) {
	d := Default()

	flagSet.String(FlagConfig, DefaultPath, "Path to config file (JSON or YAML)")
	flagSet.Int(FlagPort, d.DashboardPort, "Dashboard HTTP port")
	flagSet.String(FlagLogLevel, d.LogLevel, "Log level: debug, info, warn, error")
	flagSet.String(FlagStaticDir, d.StaticDir, "Directory holding the dashboard frontend")
}

// Load builds the configuration in override order: built-in defaults, the
// file at path, GOESRADAR_* environment variables, then any flag in flagSet
// that was set explicitly. A missing file is tolerated unless required.
// Unknown keys in the file are rejected. Lists and maps from the file
// replace the defaults as a whole.
func Load(path string, required bool, flagSet *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readFile(v, path, required); err != nil {
		return nil, err
	}

	if flagSet != nil {
		for name, key := range flagKeys {
			if f := flagSet.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// image_types has no viper default so a file value replaces it instead
	// of being merged key by key.
	if cfg.ImageTypes == nil {
		cfg.ImageTypes = DefaultImageTypes()
	}

	if cfg.UploadStations == nil {
		cfg.UploadStations = []string{}
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readFile(v *viper.Viper, path string, required bool) error {
	if path == "" {
		if required {
			return errConfigNotFound
		}

		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}

		return fmt.Errorf("%w: %s: %w", errConfigNotFound, path, err)
	}

	v.SetConfigFile(path)

	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		v.SetConfigType("json")
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config '%s': %w", path, err)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("satellite", d.Satellite)
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("images_dir", d.ImagesDir)
	v.SetDefault("emwin_dir", d.EmwinDir)
	v.SetDefault("upload_logs_dir", d.UploadLogsDir)
	v.SetDefault("services.receiver", d.Services.Receiver)
	v.SetDefault("services.processors", d.Services.Processors)
	v.SetDefault("upload_stations", d.UploadStations)
	v.SetDefault("dashboard_port", d.DashboardPort)
	v.SetDefault("refresh_interval", d.RefreshInterval)
	v.SetDefault("static_dir", d.StaticDir)
	v.SetDefault("health_log", d.HealthLog)
	v.SetDefault("thermal_zone_path", d.ThermalZonePath)
	v.SetDefault("command_timeout", d.CommandTimeout)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("grpc_health_addr", d.GRPCHealthAddr)
	v.SetDefault("max_connections", d.MaxConnections)
	v.SetDefault("rate_limit", d.RateLimit)
	v.SetDefault("rate_burst", d.RateBurst)
}

// Validate implements Validator.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Satellite) == "" {
		return errSatelliteRequired
	}

	if c.Services.Receiver == "" {
		return errReceiverRequired
	}

	for _, name := range c.ServiceNames() {
		if name == "" || strings.ContainsAny(name, `/\ `) {
			return fmt.Errorf("%w: %q", errInvalidServiceName, name)
		}
	}

	if c.DashboardPort < 1 || c.DashboardPort > 65535 {
		return fmt.Errorf("%w: %d", errInvalidPort, c.DashboardPort)
	}

	if c.RefreshInterval <= 0 {
		return fmt.Errorf("%w: %d", errInvalidRefresh, c.RefreshInterval)
	}

	for tag, sub := range c.ImageTypes {
		if filepath.IsAbs(sub) || !filepath.IsLocal(sub) {
			return fmt.Errorf("%w: %s=%q", errInvalidImageSubpath, tag, sub)
		}
	}

	for _, station := range c.UploadStations {
		if station == "" || strings.ContainsAny(station, `/\`) || strings.Contains(station, "..") {
			return fmt.Errorf("%w: %q", errInvalidStation, station)
		}
	}

	if c.CommandTimeout <= 0 {
		return fmt.Errorf("%w: %s", errInvalidTimeout, c.CommandTimeout)
	}

	if c.RateLimit < 0 || c.RateBurst < 0 {
		return errInvalidRateLimit
	}

	return nil
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	if v, ok := cfg.(Validator); ok {
		return v.Validate()
	}

	return nil
}

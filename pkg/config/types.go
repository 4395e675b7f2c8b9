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

package config

import (
	"net"
	"path/filepath"
	"strconv"
	"time"
)

// Services names the systemd units to monitor. The receiver is the
// demodulator whose journal carries the monitor lines.
type Services struct {
	Receiver   string   `mapstructure:"receiver" json:"receiver"`
	Processors []string `mapstructure:"processors" json:"processors"`
}

// Config is the process-wide dashboard configuration. It is built once by
// Load and must not be modified afterwards.
type Config struct {
	Satellite       string            `mapstructure:"satellite" json:"satellite"`
	DataDir         string            `mapstructure:"data_dir" json:"data_dir"`
	ImagesDir       string            `mapstructure:"images_dir" json:"images_dir"`
	EmwinDir        string            `mapstructure:"emwin_dir" json:"emwin_dir"`
	UploadLogsDir   string            `mapstructure:"upload_logs_dir" json:"upload_logs_dir"`
	Services        Services          `mapstructure:"services" json:"services"`
	UploadStations  []string          `mapstructure:"upload_stations" json:"upload_stations"`
	ImageTypes      map[string]string `mapstructure:"image_types" json:"image_types"`
	DashboardPort   int               `mapstructure:"dashboard_port" json:"dashboard_port"`
	RefreshInterval int               `mapstructure:"refresh_interval" json:"refresh_interval"`

	StaticDir       string        `mapstructure:"static_dir" json:"static_dir"`
	HealthLog       string        `mapstructure:"health_log" json:"health_log"`
	ThermalZonePath string        `mapstructure:"thermal_zone_path" json:"thermal_zone_path"`
	CommandTimeout  time.Duration `mapstructure:"command_timeout" json:"command_timeout"`
	LogLevel        string        `mapstructure:"log_level" json:"log_level"`
	GRPCHealthAddr  string        `mapstructure:"grpc_health_addr" json:"grpc_health_addr"`
	MaxConnections  int           `mapstructure:"max_connections" json:"max_connections"`
	RateLimit       float64       `mapstructure:"rate_limit" json:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst" json:"rate_burst"`
}

// Default returns the built-in configuration for a Raspberry Pi running
// goestools against GOES-16.
func Default() Config {
	return Config{
		Satellite:     "GOES-16",
		DataDir:       "/home/pi/goes16",
		ImagesDir:     "/home/pi/goes16",
		EmwinDir:      "/home/pi/goes16/emwinTEXT/emwin",
		UploadLogsDir: "/home/pi",
		Services: Services{
			Receiver:   "goesrecv",
			Processors: []string{"goesproc"},
		},
		UploadStations:  []string{},
		ImageTypes:      DefaultImageTypes(),
		DashboardPort:   8080,
		RefreshInterval: 5000,

		StaticDir:       "static",
		HealthLog:       "health_log.txt",
		ThermalZonePath: "/sys/class/thermal/thermal_zone0/temp",
		CommandTimeout:  5 * time.Second,
		LogLevel:        "info",
		MaxConnections:  64,
		RateLimit:       20,
		RateBurst:       40,
	}
}

// DefaultImageTypes maps image type tags to their directory under images_dir.
func DefaultImageTypes() map[string]string {
	return map[string]string{
		"fd_fc": "fd/fc",
		"m1_fc": "m1/fc",
		"m2_fc": "m2/fc",
	}
}

// ServiceNames returns the receiver followed by the processors.
func (c *Config) ServiceNames() []string {
	names := make([]string, 0, 1+len(c.Services.Processors))
	names = append(names, c.Services.Receiver)

	return append(names, c.Services.Processors...)
}

// ListenAddr is the HTTP listen address for the dashboard.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort("", strconv.Itoa(c.DashboardPort))
}

// HealthLogPath resolves the health log against upload_logs_dir when relative.
func (c *Config) HealthLogPath() string {
	if filepath.IsAbs(c.HealthLog) {
		return c.HealthLog
	}

	return filepath.Join(c.UploadLogsDir, c.HealthLog)
}

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

import "errors"

var (
	errSatelliteRequired   = errors.New("satellite is required")
	errReceiverRequired    = errors.New("services.receiver is required")
	errInvalidServiceName  = errors.New("invalid service name")
	errInvalidPort         = errors.New("dashboard_port must be between 1 and 65535")
	errInvalidRefresh      = errors.New("refresh_interval must be positive")
	errInvalidImageSubpath = errors.New("image_types subpath must be relative and stay inside images_dir")
	errInvalidStation      = errors.New("invalid upload station name")
	errInvalidTimeout      = errors.New("command_timeout must be positive")
	errInvalidRateLimit    = errors.New("rate_limit and rate_burst must not be negative")
	errConfigNotFound      = errors.New("config file not found")
)

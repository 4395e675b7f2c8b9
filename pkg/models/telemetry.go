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

// Package models holds the snapshot types returned by the dashboard API.
// Every snapshot is rebuilt from live system state on each request.
package models

import "time"

// Quality is the signal tier derived from the Viterbi average.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
	QualityUnknown   Quality = "unknown"
)

// SignalSource tells where a SignalSnapshot's numbers came from.
type SignalSource string

const (
	// SourceMonitor means a monitor line was found and parsed.
	SourceMonitor SignalSource = "monitor"
	// SourceStale means the journal was readable but held no monitor line in the scanned window.
	SourceStale SignalSource = "stale"
	// SourceNone means the receiver journal could not be read.
	SourceNone SignalSource = "none"
)

// SignalSnapshot is the latest demodulator telemetry. All numeric fields
// are independently optional.
type SignalSnapshot struct {
	Gain      *float64     `json:"gain"`
	Freq      *float64     `json:"freq"`
	Omega     *float64     `json:"omega"`
	VitAvg    *int64       `json:"vit_avg"`
	Drops     *int64       `json:"drops"`
	Packets   *int64       `json:"packets"`
	Timestamp time.Time    `json:"timestamp"`
	Status    Quality      `json:"status"`
	Source    SignalSource `json:"source"`
	Satellite string       `json:"satellite"`
}

// ServiceStatus is the liveness record of one systemd unit.
type ServiceStatus struct {
	Name          string   `json:"name"`
	Active        bool     `json:"active"`
	PID           *int     `json:"pid"`
	UptimeSeconds *float64 `json:"uptime_seconds"`
	MemoryMB      *float64 `json:"memory_mb"`
}

// ServicesResponse wraps the service list for the API.
type ServicesResponse struct {
	Services []ServiceStatus `json:"services"`
}

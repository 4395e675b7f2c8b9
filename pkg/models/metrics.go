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

package models

// HostHealthSnapshot is an instantaneous reading of host metrics. Any
// reading that is unavailable on this platform is nil.
type HostHealthSnapshot struct {
	CPUTempC      *float64 `json:"cpu_temp_c"`
	CPUPercent    *float64 `json:"cpu_percent"`
	MemoryPercent *float64 `json:"memory_percent"`
	MemoryUsedMB  *float64 `json:"memory_used_mb"`
	MemoryTotalMB *float64 `json:"memory_total_mb"`
	Load1m        *float64 `json:"load_1m"`
	Load5m        *float64 `json:"load_5m"`
	Load15m       *float64 `json:"load_15m"`
	UptimeSeconds *float64 `json:"uptime_seconds"`
	Hostname      *string  `json:"hostname"`
}

// DiskUsageSnapshot is root filesystem capacity plus the size of each
// configured data directory in bytes.
type DiskUsageSnapshot struct {
	TotalGB     *float64          `json:"total_gb"`
	UsedGB      *float64          `json:"used_gb"`
	FreeGB      *float64          `json:"free_gb"`
	Percent     *float64          `json:"percent"`
	Directories map[string]*int64 `json:"directories"`
}

// Directory categories reported in DiskUsageSnapshot.Directories.
const (
	DirData   = "data"
	DirImages = "images"
	DirEmwin  = "emwin"
)

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

import "time"

// ImageRecord describes one product image written today.
type ImageRecord struct {
	Path      string    `json:"path"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	SizeKB    float64   `json:"size_kb"`
	Timestamp time.Time `json:"timestamp"`
}

// ImagesResponse wraps the image list for the API.
type ImagesResponse struct {
	Images []ImageRecord `json:"images"`
}

// UploadStats counts today's uploads per station and inbound EMWIN files.
type UploadStats struct {
	Date               string         `json:"date"`
	UploadsByStation   map[string]int `json:"uploads_by_station"`
	TotalUploads       int            `json:"total_uploads"`
	EmwinFilesReceived int            `json:"emwin_files_received"`
}

// LogQueryResult is the tail of one log source.
type LogQueryResult struct {
	LogType string `json:"log_type"`
	Lines   int    `json:"lines"`
	Content string `json:"content"`
}

// DashboardConfig is the subset of configuration the frontend needs.
type DashboardConfig struct {
	Satellite       string   `json:"satellite"`
	RefreshInterval int      `json:"refresh_interval"`
	Services        []string `json:"services"`
	UploadStations  []string `json:"upload_stations"`
}

// HealthStatus is the liveness probe of the dashboard itself.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Hostname  string    `json:"hostname"`
	Satellite string    `json:"satellite"`
	Version   string    `json:"version"`
}

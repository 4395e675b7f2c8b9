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

package api

import (
	"context"

	"github.com/mfreeman451/goesradar/pkg/models"
)

//go:generate mockgen -destination=mock_dashboard.go -package=api github.com/mfreeman451/goesradar/pkg/api Dashboard

// Dashboard is the snapshot source behind the HTTP API.
type Dashboard interface {
	Config() models.DashboardConfig
	Signal(ctx context.Context) models.SignalSnapshot
	Services(ctx context.Context) models.ServicesResponse
	Disk(ctx context.Context) models.DiskUsageSnapshot
	System(ctx context.Context) models.HostHealthSnapshot
	Images(ctx context.Context, limit int) models.ImagesResponse
	ImagePath(imageType, date, filename string) (string, error)
	Uploads(ctx context.Context) models.UploadStats
	Logs(ctx context.Context, logType string, lines int) (models.LogQueryResult, error)
	Health() models.HealthStatus
}

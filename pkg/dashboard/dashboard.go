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

// Package dashboard composes the per-request snapshots served by the API
// from the individual collectors.
package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mfreeman451/goesradar/pkg/command"
	"github.com/mfreeman451/goesradar/pkg/config"
	"github.com/mfreeman451/goesradar/pkg/fsscan"
	"github.com/mfreeman451/goesradar/pkg/host"
	"github.com/mfreeman451/goesradar/pkg/logs"
	"github.com/mfreeman451/goesradar/pkg/models"
	"github.com/mfreeman451/goesradar/pkg/services"
	"github.com/mfreeman451/goesradar/pkg/signal"
	"github.com/mfreeman451/goesradar/pkg/version"
)

const (
	// DefaultImageLimit is used when a caller does not ask for a count.
	DefaultImageLimit = 10
	// MaxImageLimit caps a single image listing.
	MaxImageLimit = 200

	// RootPath is the filesystem whose capacity is reported.
	RootPath = "/"

	statusOK = "ok"
)

// Dashboard owns one collector per telemetry area. It keeps no state
// between calls; every method reads the system afresh.
type Dashboard struct {
	cfg      *config.Config
	source   host.Source
	signal   *signal.Collector
	services *services.Aggregator
	scanner  *fsscan.Scanner
	sampler  *host.Sampler
	logs     *logs.Querier
	now      func() time.Time
	loc      *time.Location
	log      *zap.Logger
}

// Option customizes a Dashboard.
type Option func(*Dashboard)

// WithClock replaces time.Now and the local zone in every collector.
func WithClock(now func() time.Time, loc *time.Location) Option {
	return func(d *Dashboard) {
		d.now = now
		d.loc = loc
	}
}

// New wires the collectors for cfg. runner executes every external command
// and source supplies operating system metrics.
func New(cfg *config.Config, runner command.Runner, source host.Source, log *zap.Logger, opts ...Option) *Dashboard {
	d := &Dashboard{
		cfg:    cfg,
		source: source,
		now:    time.Now,
		loc:    time.Local,
		log:    log,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.signal = signal.NewCollector(runner, cfg.Services.Receiver, cfg.Satellite,
		log.Named("signal"), signal.WithClock(d.now))
	d.services = services.NewAggregator(runner, cfg.ServiceNames(),
		log.Named("services"), services.WithClock(d.now, d.loc))
	d.scanner = fsscan.NewScanner(cfg, runner,
		log.Named("fsscan"), fsscan.WithClock(d.now))
	d.sampler = host.NewSampler(source, runner, cfg.ThermalZonePath,
		log.Named("host"), host.WithClock(d.now))
	d.logs = logs.NewQuerier(runner, cfg.ServiceNames(), cfg.HealthLogPath(),
		log.Named("logs"))

	return d
}

// Config is the configuration view the frontend needs.
func (d *Dashboard) Config() models.DashboardConfig {
	stations := make([]string, len(d.cfg.UploadStations))
	copy(stations, d.cfg.UploadStations)

	return models.DashboardConfig{
		Satellite:       d.cfg.Satellite,
		RefreshInterval: d.cfg.RefreshInterval,
		Services:        d.cfg.ServiceNames(),
		UploadStations:  stations,
	}
}

// Signal is the latest demodulator telemetry.
func (d *Dashboard) Signal(ctx context.Context) models.SignalSnapshot {
	return d.signal.Snapshot(ctx)
}

// Services is the status of the receiver and every processor.
func (d *Dashboard) Services(ctx context.Context) models.ServicesResponse {
	return models.ServicesResponse{Services: d.services.Statuses(ctx)}
}

// Disk is root filesystem capacity plus the configured directory sizes.
func (d *Dashboard) Disk(ctx context.Context) models.DiskUsageSnapshot {
	snap := d.sampler.DiskUsage(ctx, RootPath)
	snap.Directories = d.scanner.DirSizes(ctx)

	return snap
}

// System is the host health reading.
func (d *Dashboard) System(ctx context.Context) models.HostHealthSnapshot {
	return d.sampler.Sample(ctx)
}

// Images lists today's most recent images, at most limit of them.
func (d *Dashboard) Images(ctx context.Context, limit int) models.ImagesResponse {
	return models.ImagesResponse{Images: d.scanner.RecentImages(ctx, ClampImageLimit(limit))}
}

// ClampImageLimit bounds an image count to [0, MaxImageLimit].
func ClampImageLimit(limit int) int {
	return min(max(limit, 0), MaxImageLimit)
}

// ImagePath resolves one image file. See fsscan.Scanner.ImagePath for the
// errors returned.
func (d *Dashboard) ImagePath(imageType, date, filename string) (string, error) {
	return d.scanner.ImagePath(imageType, date, filename)
}

// Uploads is today's upload and EMWIN activity.
func (d *Dashboard) Uploads(ctx context.Context) models.UploadStats {
	return d.scanner.UploadStats(ctx)
}

// Logs returns the tail of one log source. The only error is
// logs.ErrUnknownLogType.
func (d *Dashboard) Logs(ctx context.Context, logType string, lines int) (models.LogQueryResult, error) {
	return d.logs.Query(ctx, logType, lines)
}

// Health reports that the dashboard itself is up.
func (d *Dashboard) Health() models.HealthStatus {
	hostname, err := d.source.Hostname()
	if err != nil {
		d.log.Debug("hostname unavailable", zap.Error(err))
	}

	return models.HealthStatus{
		Status:    statusOK,
		Timestamp: d.now(),
		Hostname:  hostname,
		Satellite: d.cfg.Satellite,
		Version:   version.Version,
	}
}

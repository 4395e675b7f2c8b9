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

// Package host samples health metrics of the machine running the dashboard.
package host

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mfreeman451/goesradar/pkg/command"
	"github.com/mfreeman451/goesradar/pkg/extract"
	"github.com/mfreeman451/goesradar/pkg/models"
)

const (
	bytesPerMB = 1024 * 1024
	bytesPerGB = 1024 * 1024 * 1024
)

// Sampler combines Source metrics with the CPU temperature. Every reading
// is independent: a failed one is left nil.
type Sampler struct {
	source      Source
	runner      command.Runner
	thermalZone string
	now         func() time.Time
	log         *zap.Logger
}

// Option customizes a Sampler.
type Option func(*Sampler)

// WithClock replaces time.Now when computing uptime.
func WithClock(now func() time.Time) Option {
	return func(s *Sampler) { s.now = now }
}

// NewSampler returns a Sampler. thermalZone is the sysfs file read when
// vcgencmd is unavailable.
func NewSampler(source Source, runner command.Runner, thermalZone string, log *zap.Logger, opts ...Option) *Sampler {
	s := &Sampler{
		source:      source,
		runner:      runner,
		thermalZone: thermalZone,
		now:         time.Now,
		log:         log,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Sample reads every host metric. The CPU and temperature readings block
// for up to a second and run alongside the others.
func (s *Sampler) Sample(ctx context.Context) models.HostHealthSnapshot {
	var (
		snap models.HostHealthSnapshot
		g    errgroup.Group
	)

	g.Go(func() error {
		snap.CPUTempC = s.Temperature(ctx)
		return nil
	})

	g.Go(func() error {
		pct, err := s.source.CPUPercent(ctx)
		if err != nil {
			s.log.Debug("cpu percent", zap.Error(err))
			return nil
		}

		snap.CPUPercent = &pct

		return nil
	})

	if vm, err := s.source.Memory(ctx); err != nil {
		s.log.Debug("virtual memory", zap.Error(err))
	} else {
		snap.MemoryPercent = ptr(vm.UsedPercent)
		snap.MemoryUsedMB = ptr(round(float64(vm.Used)/bytesPerMB, 1))
		snap.MemoryTotalMB = ptr(round(float64(vm.Total)/bytesPerMB, 1))
	}

	if avg, err := s.source.Load(ctx); err != nil {
		s.log.Debug("load average", zap.Error(err))
	} else {
		snap.Load1m = ptr(round(avg.Load1, 2))
		snap.Load5m = ptr(round(avg.Load5, 2))
		snap.Load15m = ptr(round(avg.Load15, 2))
	}

	if boot, err := s.source.BootTime(ctx); err != nil {
		s.log.Debug("boot time", zap.Error(err))
	} else {
		snap.UptimeSeconds = ptr(s.now().Sub(boot).Seconds())
	}

	if name, err := s.source.Hostname(); err != nil {
		s.log.Debug("hostname", zap.Error(err))
	} else {
		snap.Hostname = &name
	}

	_ = g.Wait()

	return snap
}

// Temperature returns the CPU temperature in degrees Celsius. vcgencmd is
// tried first; the thermal zone file is read if it fails or prints
// something unexpected.
func (s *Sampler) Temperature(ctx context.Context) *float64 {
	res := s.runner.Run(ctx, "vcgencmd", "measure_temp")
	if res.OK() {
		fields := extract.Extract(res.Output, extract.TemperatureRules)
		if v, ok := fields.Float(extract.FieldTemp); ok {
			return &v
		}
	}

	if s.thermalZone == "" {
		return nil
	}

	v, err := readThermalZone(s.thermalZone)
	if err != nil {
		s.log.Debug("no cpu temperature", zap.NamedError("vcgencmd", res.Err), zap.Error(err))
		return nil
	}

	return &v
}

// readThermalZone parses a sysfs thermal zone file holding millidegrees.
func readThermalZone(path string) (float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	milli, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errThermalZoneFormat, path)
	}

	return float64(milli) / 1000, nil
}

// DiskUsage fills the capacity fields of a disk snapshot for the filesystem
// holding path. Directories is left for the caller.
func (s *Sampler) DiskUsage(ctx context.Context, path string) models.DiskUsageSnapshot {
	var snap models.DiskUsageSnapshot

	usage, err := s.source.DiskUsage(ctx, path)
	if err != nil {
		s.log.Warn("disk usage unavailable", zap.String("path", path), zap.Error(err))
		return snap
	}

	snap.TotalGB = ptr(round(float64(usage.Total)/bytesPerGB, 1))
	snap.UsedGB = ptr(round(float64(usage.Used)/bytesPerGB, 1))
	snap.FreeGB = ptr(round(float64(usage.Free)/bytesPerGB, 1))
	snap.Percent = ptr(usage.UsedPercent)

	return snap
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(v*p) / p
}

func ptr[T any](v T) *T { return &v }

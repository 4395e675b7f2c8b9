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

// Package services reports systemd liveness, PID, uptime and memory for
// the ground-station units.
package services

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mfreeman451/goesradar/pkg/command"
	"github.com/mfreeman451/goesradar/pkg/models"
)

const (
	propActiveEnter   = "ActiveEnterTimestamp"
	propMainPID       = "MainPID"
	propMemoryCurrent = "MemoryCurrent"

	// timestampLayout is how systemctl show prints ActiveEnterTimestamp.
	timestampLayout     = "Mon 2006-01-02 15:04:05"
	timestampZoneLayout = timestampLayout + " MST"

	bytesPerMB = 1024 * 1024

	defaultConcurrency = 4
)

// Aggregator queries systemd for each configured unit.
type Aggregator struct {
	runner      command.Runner
	names       []string
	now         func() time.Time
	loc         *time.Location
	concurrency int
	log         *zap.Logger
}

// Option customizes an Aggregator.
type Option func(*Aggregator)

// WithClock replaces time.Now and the zone used for zone-less timestamps.
func WithClock(now func() time.Time, loc *time.Location) Option {
	return func(a *Aggregator) {
		a.now = now
		a.loc = loc
	}
}

// WithConcurrency bounds how many units are queried at once.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// NewAggregator returns an Aggregator for names, reported in that order.
func NewAggregator(runner command.Runner, names []string, log *zap.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		runner:      runner,
		names:       append([]string(nil), names...),
		now:         time.Now,
		loc:         time.Local,
		concurrency: defaultConcurrency,
		log:         log,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Statuses queries every unit concurrently. A failure on one unit or one
// property never affects the others.
func (a *Aggregator) Statuses(ctx context.Context) []models.ServiceStatus {
	out := make([]models.ServiceStatus, len(a.names))

	var g errgroup.Group
	g.SetLimit(a.concurrency)

	for i, name := range a.names {
		i, name := i, name
		g.Go(func() error {
			out[i] = a.Status(ctx, name)
			return nil
		})
	}

	_ = g.Wait()

	return out
}

// Status builds the record for one unit.
func (a *Aggregator) Status(ctx context.Context, name string) models.ServiceStatus {
	unit := UnitName(name)
	st := models.ServiceStatus{Name: name}

	active := a.runner.Run(ctx, "systemctl", "is-active", unit)
	st.Active = IsActive(active)

	show := a.runner.Run(ctx, "systemctl", "show", unit,
		"--property="+propActiveEnter+","+propMainPID+","+propMemoryCurrent)
	if !show.OK() {
		a.log.Debug("systemctl show failed", zap.String("unit", unit), zap.Error(show.Err))
	}

	if show.TimedOut() {
		return st
	}

	props := ParseProperties(show.Output)

	st.PID = ParsePID(props[propMainPID])
	st.MemoryMB = MemoryMB(props[propMemoryCurrent])

	if start, ok := ParseTimestamp(props[propActiveEnter], a.loc); ok {
		up := a.now().Sub(start).Seconds()
		st.UptimeSeconds = &up
	}

	return st
}

// UnitName appends the .service suffix systemd expects.
func UnitName(name string) string {
	if strings.HasSuffix(name, ".service") {
		return name
	}

	return name + ".service"
}

// IsActive reports whether `systemctl is-active` printed exactly "active".
// systemctl exits non-zero for inactive units, so the exit status alone is
// not used.
func IsActive(res command.Result) bool {
	if res.TimedOut() {
		return false
	}

	return strings.TrimSpace(res.Output) == "active"
}

// ParseProperties splits `systemctl show` key=value lines. Lines without
// '=' are ignored; values may themselves contain '='.
func ParseProperties(output string) map[string]string {
	props := make(map[string]string)

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		props[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}

	return props
}

// ParseTimestamp parses an ActiveEnterTimestamp value. Fractional seconds
// are dropped. A trailing zone abbreviation is honored; without one the
// value is read in loc. Empty and "n/a" values are not timestamps.
func ParseTimestamp(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == "n/a" {
		return time.Time{}, false
	}

	value = dropFraction(value)

	if t, err := time.ParseInLocation(timestampZoneLayout, value, loc); err == nil {
		return t, true
	}

	if t, err := time.ParseInLocation(timestampLayout, value, loc); err == nil {
		return t, true
	}

	return time.Time{}, false
}

func dropFraction(value string) string {
	i := strings.IndexByte(value, '.')
	if i < 0 {
		return value
	}

	if j := strings.IndexByte(value[i:], ' '); j >= 0 {
		return value[:i] + value[i+j:]
	}

	return value[:i]
}

// ParsePID returns the main PID, or nil when systemd reports none (0) or
// the value is not a number.
func ParsePID(value string) *int {
	pid, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || pid <= 0 {
		return nil
	}

	return &pid
}

// MemoryMB converts a MemoryCurrent byte count to megabytes rounded to one
// decimal. "[not set]" and the unsigned infinity sentinel yield nil.
func MemoryMB(value string) *float64 {
	b, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil || b == math.MaxUint64 {
		return nil
	}

	mb := math.Round(float64(b)/bytesPerMB*10) / 10

	return &mb
}

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

package signal

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mfreeman451/goesradar/pkg/command"
	"github.com/mfreeman451/goesradar/pkg/extract"
	"github.com/mfreeman451/goesradar/pkg/models"
)

const (
	// MonitorMarker identifies goesrecv's periodic telemetry lines.
	MonitorMarker = "[monitor]"

	// DefaultWindow is how many trailing journal lines are searched.
	DefaultWindow = 50
)

// Collector reads the receiver journal and reports the newest monitor line.
type Collector struct {
	runner    command.Runner
	receiver  string
	satellite string
	window    int
	now       func() time.Time
	log       *zap.Logger
}

// Option customizes a Collector.
type Option func(*Collector)

// WithClock replaces time.Now for snapshot timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

// WithWindow changes how many journal lines are searched.
func WithWindow(lines int) Option {
	return func(c *Collector) {
		if lines > 0 {
			c.window = lines
		}
	}
}

// NewCollector returns a Collector for the receiver unit.
func NewCollector(runner command.Runner, receiver, satellite string, log *zap.Logger, opts ...Option) *Collector {
	c := &Collector{
		runner:    runner,
		receiver:  receiver,
		satellite: satellite,
		window:    DefaultWindow,
		now:       time.Now,
		log:       log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Placeholder is a snapshot with every reading absent.
func Placeholder(satellite string, now time.Time) models.SignalSnapshot {
	return models.SignalSnapshot{
		Timestamp: now,
		Status:    models.QualityUnknown,
		Source:    models.SourceNone,
		Satellite: satellite,
	}
}

// Snapshot reads the last window lines of the receiver journal and parses
// the most recent monitor line. Failures leave the placeholder in place.
func (c *Collector) Snapshot(ctx context.Context) models.SignalSnapshot {
	snap := Placeholder(c.satellite, c.now())

	res := c.runner.Run(ctx, "journalctl",
		"-u", c.receiver+".service",
		"-n", strconv.Itoa(c.window),
		"--no-pager", "-o", "cat")
	if !res.OK() {
		c.log.Debug("receiver journal unavailable",
			zap.String("receiver", c.receiver), zap.Error(res.Err))

		return snap
	}

	line, ok := LatestMonitorLine(res.Output)
	if !ok {
		snap.Source = models.SourceStale
		return snap
	}

	Apply(&snap, extract.Extract(line, extract.MonitorRules))
	snap.Source = models.SourceMonitor

	return snap
}

// LatestMonitorLine returns the last line of output that carries the
// monitor marker.
func LatestMonitorLine(output string) (string, bool) {
	lines := strings.Split(strings.TrimSpace(output), "\n")

	for i := len(lines) - 1; i >= 0; i-- {
		if strings.Contains(lines[i], MonitorMarker) {
			return lines[i], true
		}
	}

	return "", false
}

// Apply copies extracted fields into snap and derives the quality tier
// from the Viterbi average when it is present.
func Apply(snap *models.SignalSnapshot, fields extract.Fields) {
	if v, ok := fields.Float(extract.FieldGain); ok {
		snap.Gain = &v
	}

	if v, ok := fields.Float(extract.FieldFreq); ok {
		snap.Freq = &v
	}

	if v, ok := fields.Float(extract.FieldOmega); ok {
		snap.Omega = &v
	}

	if v, ok := fields.Int(extract.FieldDrops); ok {
		snap.Drops = &v
	}

	if v, ok := fields.Int(extract.FieldPackets); ok {
		snap.Packets = &v
	}

	if v, ok := fields.Int(extract.FieldVitAvg); ok {
		snap.VitAvg = &v
		snap.Status = Classify(v)
	}
}

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

// Package logs returns the recent tail of service journals, the system
// journal and the station health log.
package logs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mfreeman451/goesradar/pkg/command"
	"github.com/mfreeman451/goesradar/pkg/models"
)

const (
	// TypeSystem selects the whole system journal.
	TypeSystem = "system"
	// TypeHealth selects the station health log file.
	TypeHealth = "health"

	DefaultLines = 50
	MinLines     = 1
	MaxLines     = 500

	healthLogMissing = "Health log not found"
)

// Querier answers log tail requests.
type Querier struct {
	runner    command.Runner
	services  map[string]struct{}
	healthLog string
	log       *zap.Logger
}

// NewQuerier returns a Querier that accepts each of services as a log type
// in addition to TypeSystem and TypeHealth.
func NewQuerier(runner command.Runner, services []string, healthLog string, log *zap.Logger) *Querier {
	known := make(map[string]struct{}, len(services))
	for _, s := range services {
		known[s] = struct{}{}
	}

	return &Querier{
		runner:    runner,
		services:  known,
		healthLog: healthLog,
		log:       log,
	}
}

// ClampLines bounds a requested line count to [MinLines, MaxLines].
func ClampLines(n int) int {
	return min(max(n, MinLines), MaxLines)
}

// Query returns the last lines of logType. Collection failures are reported
// inside Content; only an unknown log type is an error.
func (q *Querier) Query(ctx context.Context, logType string, lines int) (models.LogQueryResult, error) {
	lines = ClampLines(lines)
	n := strconv.Itoa(lines)

	var content string

	switch {
	case q.isService(logType):
		content = q.runner.Run(ctx, "journalctl", "-u", logType+".service", "-n", n, "--no-pager").Text()
	case logType == TypeHealth:
		content = q.healthTail(lines)
	case logType == TypeSystem:
		content = q.runner.Run(ctx, "journalctl", "-n", n, "--no-pager").Text()
	default:
		return models.LogQueryResult{}, fmt.Errorf("%w: %q", ErrUnknownLogType, logType)
	}

	return models.LogQueryResult{
		LogType: logType,
		Lines:   lines,
		Content: content,
	}, nil
}

func (q *Querier) isService(name string) bool {
	_, ok := q.services[name]

	return ok
}

func (q *Querier) healthTail(lines int) string {
	f, err := os.Open(q.healthLog)
	if errors.Is(err, fs.ErrNotExist) {
		return healthLogMissing
	}

	if err != nil {
		return "Error reading health log: " + err.Error()
	}
	defer f.Close()

	tail, err := Tail(f, lines)
	if err != nil {
		q.log.Warn("health log read failed", zap.String("path", q.healthLog), zap.Error(err))
		return "Error reading health log: " + err.Error()
	}

	return tail
}

// Tail returns the last n lines of r with their line endings intact.
func Tail(r io.Reader, n int) (string, error) {
	if n <= 0 {
		return "", nil
	}

	var (
		ring = make([]string, n)
		next int
		seen int
		br   = bufio.NewReader(r)
	)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			ring[next] = line
			next = (next + 1) % n
			seen++
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return "", err
		}
	}

	var b strings.Builder

	count := min(seen, n)
	start := (next - count + n) % n

	for i := 0; i < count; i++ {
		b.WriteString(ring[(start+i)%n])
	}

	return b.String(), nil
}

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

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/mfreeman451/goesradar/pkg/command"
	"github.com/mfreeman451/goesradar/pkg/config"
	"github.com/mfreeman451/goesradar/pkg/fsscan"
	"github.com/mfreeman451/goesradar/pkg/host"
	"github.com/mfreeman451/goesradar/pkg/logs"
	"github.com/mfreeman451/goesradar/pkg/models"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

const (
	today       = "2026-10-15"
	monitorLine = "[monitor] gain: 8.21, freq: -2100.5, omega: 2.000, vit(avg): 320, drops: 0, packets: 1234"
)

type fixture struct {
	cfg    *config.Config
	runner *command.MockRunner
	source *host.MockSource
	dash   *Dashboard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	cfg := config.Default()
	cfg.DataDir = root
	cfg.ImagesDir = filepath.Join(root, "images")
	cfg.EmwinDir = filepath.Join(root, "emwin")
	cfg.UploadLogsDir = filepath.Join(root, "logs")
	cfg.UploadStations = []string{"kbos"}
	cfg.ThermalZonePath = ""

	ctrl := gomock.NewController(t)
	f := &fixture{
		cfg:    &cfg,
		runner: command.NewMockRunner(ctrl),
		source: host.NewMockSource(ctrl),
	}

	f.dash = New(f.cfg, f.runner, f.source, zap.NewNop(),
		WithClock(func() time.Time { return testNow }, time.UTC))

	return f
}

func (f *fixture) expectJournal(res command.Result) *gomock.Call {
	return f.runner.EXPECT().Run(gomock.Any(), "journalctl",
		"-u", "goesrecv.service", "-n", "50", "--no-pager", "-o", "cat").Return(res)
}

func TestDashboard_Config(t *testing.T) {
	f := newFixture(t)
	f.cfg.Services.Processors = []string{"goesproc", "goesupload"}

	got := f.dash.Config()

	assert.Equal(t, models.DashboardConfig{
		Satellite:       "GOES-16",
		RefreshInterval: 5000,
		Services:        []string{"goesrecv", "goesproc", "goesupload"},
		UploadStations:  []string{"kbos"},
	}, got)
}

func TestDashboard_SignalIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.expectJournal(command.Result{Output: "noise\n" + monitorLine + "\nmore noise\n"}).Times(2)

	first := f.dash.Signal(context.Background())
	second := f.dash.Signal(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, models.QualityGood, first.Status)
	assert.Equal(t, models.SourceMonitor, first.Source)
	assert.Equal(t, "GOES-16", first.Satellite)
	assert.Equal(t, testNow, first.Timestamp)
	require.NotNil(t, first.Freq)
	assert.InDelta(t, -2100.5, *first.Freq, 1e-9)
	require.NotNil(t, first.VitAvg)
	assert.Equal(t, int64(320), *first.VitAvg)
}

func TestDashboard_SignalPlaceholder(t *testing.T) {
	tests := []struct {
		name   string
		result command.Result
		source models.SignalSource
	}{
		{name: "journal unavailable", result: command.Result{Err: command.ErrTimeout}, source: models.SourceNone},
		{name: "no monitor line", result: command.Result{Output: "starting goesrecv\n"}, source: models.SourceStale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectJournal(tt.result)

			got := f.dash.Signal(context.Background())

			assert.Equal(t, models.SignalSnapshot{
				Timestamp: testNow,
				Status:    models.QualityUnknown,
				Source:    tt.source,
				Satellite: "GOES-16",
			}, got)
		})
	}
}

func TestDashboard_Services(t *testing.T) {
	f := newFixture(t)

	f.runner.EXPECT().Run(gomock.Any(), "systemctl", "is-active", "goesrecv.service").
		Return(command.Result{Output: "active\n"})
	f.runner.EXPECT().Run(gomock.Any(), "systemctl", "show", "goesrecv.service",
		"--property=ActiveEnterTimestamp,MainPID,MemoryCurrent").
		Return(command.Result{Output: "ActiveEnterTimestamp=Thu 2026-10-15 11:00:00 UTC\nMainPID=812\nMemoryCurrent=52428800\n"})
	f.runner.EXPECT().Run(gomock.Any(), "systemctl", "is-active", "goesproc.service").
		Return(command.Result{Output: "inactive\n", ExitCode: 3, Err: command.ErrNonZeroExit})
	f.runner.EXPECT().Run(gomock.Any(), "systemctl", "show", "goesproc.service",
		"--property=ActiveEnterTimestamp,MainPID,MemoryCurrent").
		Return(command.Result{Output: "ActiveEnterTimestamp=\nMainPID=0\nMemoryCurrent=[not set]\n"})

	got := f.dash.Services(context.Background()).Services

	require.Len(t, got, 2)
	assert.Equal(t, "goesrecv", got[0].Name)
	assert.True(t, got[0].Active)
	require.NotNil(t, got[0].PID)
	assert.Equal(t, 812, *got[0].PID)
	require.NotNil(t, got[0].UptimeSeconds)
	assert.InDelta(t, 3600.0, *got[0].UptimeSeconds, 1e-9)
	require.NotNil(t, got[0].MemoryMB)
	assert.InDelta(t, 50.0, *got[0].MemoryMB, 1e-9)

	assert.Equal(t, models.ServiceStatus{Name: "goesproc"}, got[1])
}

func TestDashboard_Disk(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(f.cfg.ImagesDir, 0o755))

	f.source.EXPECT().DiskUsage(gomock.Any(), RootPath).Return(&disk.UsageStat{
		Total:       64 << 30,
		Used:        16 << 30,
		Free:        48 << 30,
		UsedPercent: 25,
	}, nil)
	f.runner.EXPECT().Run(gomock.Any(), "du", "-sb", f.cfg.DataDir).Return(command.Result{Output: "4096\t.\n"})
	f.runner.EXPECT().Run(gomock.Any(), "du", "-sb", f.cfg.ImagesDir).Return(command.Result{Output: "1024\t.\n"})

	got := f.dash.Disk(context.Background())

	require.NotNil(t, got.TotalGB)
	assert.InDelta(t, 64.0, *got.TotalGB, 1e-9)
	assert.InDelta(t, 25.0, *got.Percent, 1e-9)
	require.Contains(t, got.Directories, models.DirEmwin)
	assert.Nil(t, got.Directories[models.DirEmwin])
	assert.Equal(t, int64(4096), *got.Directories[models.DirData])
	assert.Equal(t, int64(1024), *got.Directories[models.DirImages])
}

func TestDashboard_DiskPartialFailure(t *testing.T) {
	f := newFixture(t)
	f.cfg.DataDir = filepath.Join(f.cfg.DataDir, "absent")

	f.source.EXPECT().DiskUsage(gomock.Any(), RootPath).Return(nil, errors.New("statfs"))

	got := f.dash.Disk(context.Background())

	assert.Nil(t, got.TotalGB)
	assert.Equal(t, map[string]*int64{
		models.DirData:   nil,
		models.DirImages: nil,
		models.DirEmwin:  nil,
	}, got.Directories)
}

func TestDashboard_ImagesLimit(t *testing.T) {
	f := newFixture(t)

	dir := filepath.Join(f.cfg.ImagesDir, "fd/fc", today)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	for i := 0; i < MaxImageLimit+5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("img_%03d.jpg", i))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		mtime := testNow.Add(-time.Duration(i) * time.Second)
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: DefaultImageLimit, want: DefaultImageLimit},
		{name: "capped", limit: 100000, want: MaxImageLimit},
		{name: "zero", limit: 0, want: 0},
		{name: "negative", limit: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.dash.Images(context.Background(), tt.limit).Images
			require.NotNil(t, got)
			assert.Len(t, got, tt.want)

			if tt.want > 0 {
				assert.Equal(t, "img_000.jpg", got[0].Name)
			}
		})
	}
}

func TestClampImageLimit(t *testing.T) {
	assert.Equal(t, 0, ClampImageLimit(-1))
	assert.Equal(t, 7, ClampImageLimit(7))
	assert.Equal(t, MaxImageLimit, ClampImageLimit(MaxImageLimit+1))
}

func TestDashboard_Uploads(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(f.cfg.UploadLogsDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(f.cfg.UploadLogsDir, fsscan.UploadLogName("kbos", today)), []byte("1\n2\n"), 0o644))

	got := f.dash.Uploads(context.Background())

	assert.Equal(t, today, got.Date)
	assert.Equal(t, map[string]int{"kbos": 2}, got.UploadsByStation)
	assert.Equal(t, 2, got.TotalUploads)
	assert.Equal(t, 0, got.EmwinFilesReceived)
}

func TestDashboard_ImagePathErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.dash.ImagePath("fd_fc", "..", "x.jpg")
	require.ErrorIs(t, err, fsscan.ErrInvalidPath)

	_, err = f.dash.ImagePath("bogus", today, "x.jpg")
	require.ErrorIs(t, err, fsscan.ErrUnknownImageType)

	_, err = f.dash.ImagePath("fd_fc", today, "x.jpg")
	require.ErrorIs(t, err, fsscan.ErrImageNotFound)
}

func TestDashboard_Logs(t *testing.T) {
	f := newFixture(t)

	_, err := f.dash.Logs(context.Background(), "sshd", 10)
	require.ErrorIs(t, err, logs.ErrUnknownLogType)

	got, err := f.dash.Logs(context.Background(), logs.TypeHealth, 10)
	require.NoError(t, err)
	assert.Equal(t, "Health log not found", got.Content)
}

func TestDashboard_Health(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().Hostname().Return("goes-pi", nil)

	assert.Equal(t, models.HealthStatus{
		Status:    "ok",
		Timestamp: testNow,
		Hostname:  "goes-pi",
		Satellite: "GOES-16",
		Version:   "1.0.0",
	}, f.dash.Health())
}

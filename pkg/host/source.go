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

package host

import (
	"context"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	pshost "github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

//go:generate mockgen -destination=mock_source.go -package=host github.com/mfreeman451/goesradar/pkg/host Source

// CPUSampleInterval is how long CPU utilisation is measured for.
const CPUSampleInterval = time.Second

// Source provides raw operating system metrics.
type Source interface {
	CPUPercent(ctx context.Context) (float64, error)
	Memory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	Load(ctx context.Context) (*load.AvgStat, error)
	BootTime(ctx context.Context) (time.Time, error)
	Hostname() (string, error)
	DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error)
}

// PSUtilSource reads metrics through gopsutil.
type PSUtilSource struct{}

var _ Source = PSUtilSource{}

// CPUPercent blocks for CPUSampleInterval and returns total utilisation.
func (PSUtilSource) CPUPercent(ctx context.Context) (float64, error) {
	pcts, err := cpu.PercentWithContext(ctx, CPUSampleInterval, false)
	if err != nil {
		return 0, err
	}

	if len(pcts) == 0 {
		return 0, errNoCPUSample
	}

	return pcts[0], nil
}

func (PSUtilSource) Memory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (PSUtilSource) Load(ctx context.Context) (*load.AvgStat, error) {
	return load.AvgWithContext(ctx)
}

func (PSUtilSource) BootTime(ctx context.Context) (time.Time, error) {
	secs, err := pshost.BootTimeWithContext(ctx)
	if err != nil {
		return time.Time{}, err
	}

	return time.Unix(int64(secs), 0), nil
}

func (PSUtilSource) Hostname() (string, error) {
	return os.Hostname()
}

func (PSUtilSource) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

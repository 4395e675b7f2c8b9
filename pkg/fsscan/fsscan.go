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

// Package fsscan reads ground-station file trees: directory sizes, today's
// product images, and upload and EMWIN activity counters.
package fsscan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mfreeman451/goesradar/pkg/command"
	"github.com/mfreeman451/goesradar/pkg/config"
	"github.com/mfreeman451/goesradar/pkg/models"
)

const (
	// DateLayout names the per-day directories goesproc writes into.
	DateLayout = "2006-01-02"

	imageExt = ".jpg"
	emwinExt = ".TXT"
)

// Scanner reads the directories named in the configuration. It never writes.
type Scanner struct {
	cfg    *config.Config
	runner command.Runner
	now    func() time.Time
	log    *zap.Logger
}

// Option customizes a Scanner.
type Option func(*Scanner)

// WithClock replaces time.Now when choosing today's directories.
func WithClock(now func() time.Time) Option {
	return func(s *Scanner) { s.now = now }
}

// NewScanner returns a Scanner over cfg's directories.
func NewScanner(cfg *config.Config, runner command.Runner, log *zap.Logger, opts ...Option) *Scanner {
	s := &Scanner{
		cfg:    cfg,
		runner: runner,
		now:    time.Now,
		log:    log,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Today is the current date as used in directory and log file names.
func (s *Scanner) Today() string {
	return s.now().Format(DateLayout)
}

// DirSize returns the recursive size of path in bytes using `du -sb`, or
// nil when the path is missing or the scan fails.
func (s *Scanner) DirSize(ctx context.Context, path string) *int64 {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	res := s.runner.Run(ctx, "du", "-sb", path)
	if !res.OK() {
		s.log.Debug("du failed", zap.String("path", path), zap.Error(res.Err))
		return nil
	}

	size, err := parseDuOutput(res.Output)
	if err != nil {
		s.log.Debug("du output", zap.String("path", path), zap.Error(err))
		return nil
	}

	return &size
}

func parseDuOutput(output string) (int64, error) {
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return 0, errSizeUnparseable
	}

	size, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errSizeUnparseable, fields[0])
	}

	return size, nil
}

// DirSizes sizes the data, images and EMWIN directories concurrently.
func (s *Scanner) DirSizes(ctx context.Context) map[string]*int64 {
	dirs := map[string]string{
		models.DirData:   s.cfg.DataDir,
		models.DirImages: s.cfg.ImagesDir,
		models.DirEmwin:  s.cfg.EmwinDir,
	}

	var (
		mu  sync.Mutex
		g   errgroup.Group
		out = make(map[string]*int64, len(dirs))
	)

	for category, path := range dirs {
		category, path := category, path
		g.Go(func() error {
			size := s.DirSize(ctx, path)

			mu.Lock()
			out[category] = size
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	return out
}

// RecentImages lists today's images across every configured type, newest
// first, keeping at most limit records overall. A type whose directory is
// missing or unreadable contributes nothing.
func (s *Scanner) RecentImages(ctx context.Context, limit int) []models.ImageRecord {
	images := make([]models.ImageRecord, 0)
	if limit <= 0 {
		return images
	}

	today := s.Today()

	tags := make([]string, 0, len(s.cfg.ImageTypes))
	for tag := range s.cfg.ImageTypes {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	for _, tag := range tags {
		if ctx.Err() != nil {
			break
		}

		dir := filepath.Join(s.cfg.ImagesDir, s.cfg.ImageTypes[tag], today)

		recs, err := listImages(dir, tag, limit)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				s.log.Debug("error reading image directory", zap.String("dir", dir), zap.Error(err))
			}

			continue
		}

		images = append(images, recs...)
	}

	sortNewestFirst(images)

	if len(images) > limit {
		images = images[:limit]
	}

	return images
}

func listImages(dir, tag string, limit int) ([]models.ImageRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	recs := make([]models.ImageRecord, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != imageExt {
			continue
		}

		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}

		recs = append(recs, models.ImageRecord{
			Path:      filepath.Join(dir, e.Name()),
			Name:      e.Name(),
			Type:      tag,
			SizeKB:    math.Round(float64(info.Size())/1024*10) / 10,
			Timestamp: info.ModTime(),
		})
	}

	sortNewestFirst(recs)

	if len(recs) > limit {
		recs = recs[:limit]
	}

	return recs, nil
}

// sortNewestFirst orders by modification time descending, then by name so
// equal timestamps have a stable order.
func sortNewestFirst(recs []models.ImageRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		if !recs[i].Timestamp.Equal(recs[j].Timestamp) {
			return recs[i].Timestamp.After(recs[j].Timestamp)
		}

		return recs[i].Name < recs[j].Name
	})
}

// UploadStats counts today's per-station upload log lines and EMWIN files.
func (s *Scanner) UploadStats(ctx context.Context) models.UploadStats {
	today := s.Today()
	stats := models.UploadStats{
		Date:             today,
		UploadsByStation: make(map[string]int, len(s.cfg.UploadStations)),
	}

	for _, station := range s.cfg.UploadStations {
		if ctx.Err() != nil {
			break
		}

		path := filepath.Join(s.cfg.UploadLogsDir, UploadLogName(station, today))

		n, err := countLines(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("upload log unreadable", zap.String("path", path), zap.Error(err))
		}

		stats.UploadsByStation[station] = n
		stats.TotalUploads += n
	}

	stats.EmwinFilesReceived = countFiles(filepath.Join(s.cfg.EmwinDir, today), emwinExt)

	return stats
}

// UploadLogName is the per-station per-day upload log file name.
func UploadLogName(station, date string) string {
	return station + "_upload_log_" + date + ".txt"
}

// countLines counts lines the way a reader of the file would: a final line
// without a trailing newline still counts.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var (
		buf   = make([]byte, 32*1024)
		count int
		last  byte
		seen  bool
	)

	for {
		n, err := f.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
			seen = true
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return 0, err
		}
	}

	if seen && last != '\n' {
		count++
	}

	return count, nil
}

func countFiles(dir, ext string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	n := 0

	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ext {
			n++
		}
	}

	return n
}

// ImagePath resolves a requested image to a file under images_dir. The
// segments are validated before the filesystem is touched.
func (s *Scanner) ImagePath(imageType, date, filename string) (string, error) {
	if err := ValidateSegment(date); err != nil {
		return "", err
	}

	if err := ValidateSegment(filename); err != nil {
		return "", err
	}

	sub, ok := s.cfg.ImageTypes[imageType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownImageType, imageType)
	}

	path := filepath.Join(s.cfg.ImagesDir, sub, date, filename)

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s/%s/%s", ErrImageNotFound, imageType, date, filename)
	}

	return path, nil
}

// ValidateSegment rejects a path segment that is empty, contains "..", or
// embeds a separator.
func ValidateSegment(seg string) error {
	if seg == "" || strings.Contains(seg, "..") || strings.ContainsAny(seg, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, seg)
	}

	return nil
}

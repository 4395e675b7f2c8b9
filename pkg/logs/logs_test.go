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

package logs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/mfreeman451/goesradar/pkg/command"
)

func TestClampLines(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -5, want: 1},
		{in: 0, want: 1},
		{in: 1, want: 1},
		{in: 50, want: 50},
		{in: 500, want: 500},
		{in: 501, want: 500},
		{in: 10000, want: 500},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLines(tt.in), "ClampLines(%d)", tt.in)
	}
}

func TestQuerier_QueryJournals(t *testing.T) {
	tests := []struct {
		name    string
		logType string
		lines   int
		args    []any
		result  command.Result
		want    string
		wantN   int
	}{
		{
			name:    "service journal",
			logType: "goesrecv",
			lines:   20,
			args:    []any{"-u", "goesrecv.service", "-n", "20", "--no-pager"},
			result:  command.Result{Output: "Oct 15 goesrecv[1]: started\n"},
			want:    "Oct 15 goesrecv[1]: started\n",
			wantN:   20,
		},
		{
			name:    "zero lines clamps to one",
			logType: "goesproc",
			lines:   0,
			args:    []any{"-u", "goesproc.service", "-n", "1", "--no-pager"},
			result:  command.Result{Output: "x\n"},
			want:    "x\n",
			wantN:   1,
		},
		{
			name:    "system journal clamps to max",
			logType: TypeSystem,
			lines:   10000,
			args:    []any{"-n", "500", "--no-pager"},
			result:  command.Result{Output: "kernel: hello\n"},
			want:    "kernel: hello\n",
			wantN:   500,
		},
		{
			name:    "timeout is reported as content",
			logType: TypeSystem,
			lines:   50,
			args:    []any{"-n", "50", "--no-pager"},
			result:  command.Result{Err: command.ErrTimeout},
			want:    command.TimedOutMarker,
			wantN:   50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := command.NewMockRunner(ctrl)
			runner.EXPECT().Run(gomock.Any(), "journalctl", tt.args...).Return(tt.result)

			q := NewQuerier(runner, []string{"goesrecv", "goesproc"}, "", zap.NewNop())

			got, err := q.Query(context.Background(), tt.logType, tt.lines)
			require.NoError(t, err)
			assert.Equal(t, tt.logType, got.LogType)
			assert.Equal(t, tt.wantN, got.Lines)
			assert.Equal(t, tt.want, got.Content)
		})
	}
}

func TestQuerier_QueryUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := command.NewMockRunner(ctrl)

	q := NewQuerier(runner, []string{"goesrecv"}, "", zap.NewNop())

	for _, logType := range []string{"nginx", "", "goesrecv.service", "../etc"} {
		_, err := q.Query(context.Background(), logType, 50)
		require.ErrorIs(t, err, ErrUnknownLogType, logType)
	}
}

func TestQuerier_QueryHealth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "health_log.txt")

	var b strings.Builder
	for i := 1; i <= 10; i++ {
		b.WriteString("check ")
		b.WriteString(string(rune('0' + i%10)))
		b.WriteString("\n")
	}

	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	q := NewQuerier(nil, nil, path, zap.NewNop())

	got, err := q.Query(context.Background(), TypeHealth, 3)
	require.NoError(t, err)
	assert.Equal(t, "check 8\ncheck 9\ncheck 0\n", got.Content)
	assert.Equal(t, 3, got.Lines)

	got, err = q.Query(context.Background(), TypeHealth, 100)
	require.NoError(t, err)
	assert.Equal(t, b.String(), got.Content)
}

func TestQuerier_QueryHealthMissing(t *testing.T) {
	q := NewQuerier(nil, nil, filepath.Join(t.TempDir(), "none.txt"), zap.NewNop())

	got, err := q.Query(context.Background(), TypeHealth, 50)
	require.NoError(t, err)
	assert.Equal(t, "Health log not found", got.Content)
}

func TestQuerier_QueryHealthUnreadable(t *testing.T) {
	// a directory opens but cannot be read as a file
	q := NewQuerier(nil, nil, t.TempDir(), zap.NewNop())

	got, err := q.Query(context.Background(), TypeHealth, 50)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.Content, "Error reading health log: "), got.Content)
}

func TestQuerier_ServiceNamedHealthShadowsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := command.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), "journalctl", "-u", "health.service", "-n", "5", "--no-pager").
		Return(command.Result{Output: "unit\n"})

	q := NewQuerier(runner, []string{"health"}, "/nonexistent", zap.NewNop())

	got, err := q.Query(context.Background(), TypeHealth, 5)
	require.NoError(t, err)
	assert.Equal(t, "unit\n", got.Content)
}

func TestTail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "empty", in: "", n: 5, want: ""},
		{name: "fewer lines than n", in: "a\nb\n", n: 5, want: "a\nb\n"},
		{name: "exactly n", in: "a\nb\nc\n", n: 3, want: "a\nb\nc\n"},
		{name: "last n", in: "a\nb\nc\nd\n", n: 2, want: "c\nd\n"},
		{name: "no trailing newline", in: "a\nb\nc", n: 2, want: "b\nc"},
		{name: "zero", in: "a\n", n: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(strings.NewReader(tt.in), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

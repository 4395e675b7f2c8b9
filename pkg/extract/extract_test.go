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

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_MonitorLine(t *testing.T) {
	line := "... gain: 12.5 freq: -400 vit(avg): 310 ..."

	got := Extract(line, MonitorRules)

	require.Len(t, got, 3)
	assert.Equal(t, Value{Float: 12.5, IsFloat: true}, got[FieldGain])
	assert.Equal(t, Value{Int: -400}, got[FieldFreq])
	assert.Equal(t, Value{Int: 310}, got[FieldVitAvg])
}

func TestExtract_FullGoesrecvLine(t *testing.T) {
	line := "2026-10-15T12:00:01Z [monitor] gain: 8.93e+00, freq: -2156.3, omega: 2.000, " +
		"vit(avg): 187, drops: 0, packets: 1342"

	got := Extract(line, MonitorRules)

	gain, ok := got.Float(FieldGain)
	require.True(t, ok)
	assert.InDelta(t, 8.93, gain, 1e-9)

	freq, ok := got.Float(FieldFreq)
	require.True(t, ok)
	assert.InDelta(t, -2156.3, freq, 1e-9)

	vit, ok := got.Int(FieldVitAvg)
	require.True(t, ok)
	assert.Equal(t, int64(187), vit)

	drops, ok := got.Int(FieldDrops)
	require.True(t, ok)
	assert.Equal(t, int64(0), drops)

	packets, ok := got.Int(FieldPackets)
	require.True(t, ok)
	assert.Equal(t, int64(1342), packets)

	assert.True(t, got[FieldOmega].IsFloat)
}

func TestExtract_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty line", line: ""},
		{name: "unrelated text", line: "Started goesrecv.service."},
		{name: "label without value", line: "gain: freq: vit(avg): drops:"},
		{name: "wrong case labels", line: "GAIN: 12 FREQ: 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.line, MonitorRules)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestExtract_UnparseableTokenIsDropped(t *testing.T) {
	got := Extract("gain: 1.2.3 freq: - drops: 4", MonitorRules)

	assert.NotContains(t, got, FieldGain)
	assert.NotContains(t, got, FieldFreq)
	assert.Equal(t, Value{Int: 4}, got[FieldDrops])
}

func TestExtract_TemperatureRules(t *testing.T) {
	got := Extract("temp=48.3'C\n", TemperatureRules)

	temp, ok := got.Float(FieldTemp)
	require.True(t, ok)
	assert.InDelta(t, 48.3, temp, 1e-9)

	assert.Empty(t, Extract("VCHI initialization failed", TemperatureRules))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		token string
		want  Value
		ok    bool
	}{
		{token: "42", want: Value{Int: 42}, ok: true},
		{token: "-7", want: Value{Int: -7}, ok: true},
		{token: "3.", want: Value{Float: 3, IsFloat: true}, ok: true},
		{token: "0.25", want: Value{Float: 0.25, IsFloat: true}, ok: true},
		{token: "", ok: false},
		{token: "..", ok: false},
		{token: "-", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseValue(tt.token)
			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValue_Interface(t *testing.T) {
	assert.Equal(t, int64(5), Value{Int: 5}.Interface())
	assert.Equal(t, 5.5, Value{Float: 5.5, IsFloat: true}.Interface())
}

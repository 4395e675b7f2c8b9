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

// Field names produced by MonitorRules.
const (
	FieldGain    = "gain"
	FieldFreq    = "freq"
	FieldOmega   = "omega"
	FieldVitAvg  = "vit_avg"
	FieldDrops   = "drops"
	FieldPackets = "packets"

	FieldTemp = "temp"
)

// MonitorRules match the periodic "[monitor]" line written by goesrecv, e.g.
//
//	[monitor] gain: 8.93e+00, freq: -2156.3, omega: 2.000, vit(avg): 187, drops: 0, packets: 1342
var MonitorRules = []Rule{
	NewRule(FieldGain, `gain:\s*([\d.]+)`),
	NewRule(FieldFreq, `freq:\s*([-\d.]+)`),
	NewRule(FieldOmega, `omega:\s*([\d.]+)`),
	NewRule(FieldVitAvg, `vit\(avg\):\s*(\d+)`),
	NewRule(FieldDrops, `drops:\s*(\d+)`),
	NewRule(FieldPackets, `packets:\s*(\d+)`),
}

// TemperatureRules match `vcgencmd measure_temp` output such as "temp=48.3'C".
var TemperatureRules = []Rule{
	NewRule(FieldTemp, `temp=([\d.]+)`),
}

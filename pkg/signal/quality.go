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

// Package signal turns goesrecv journal output into a SignalSnapshot.
package signal

import "github.com/mfreeman451/goesradar/pkg/models"

// Viterbi average thresholds. Lower is cleaner.
const (
	excellentBelow = 300
	goodBelow      = 400
	fairBelow      = 500
)

// Classify maps a Viterbi average to a quality tier.
func Classify(vitAvg int64) models.Quality {
	switch {
	case vitAvg < excellentBelow:
		return models.QualityExcellent
	case vitAvg < goodBelow:
		return models.QualityGood
	case vitAvg < fairBelow:
		return models.QualityFair
	default:
		return models.QualityPoor
	}
}

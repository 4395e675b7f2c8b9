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

// Package extract pulls typed numeric fields out of free-text log lines
// using named pattern rules.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Rule locates one field in a line. The first capture group of Pattern
// holds the value token.
type Rule struct {
	Field   string
	Pattern *regexp.Regexp
}

// NewRule compiles pattern into a Rule. It panics on an invalid pattern and
// is meant for package-level rule tables.
func NewRule(field, pattern string) Rule {
	return Rule{Field: field, Pattern: regexp.MustCompile(pattern)}
}

// Value is a parsed token: an integer, or a float when the token carried a
// decimal point.
type Value struct {
	Int     int64
	Float   float64
	IsFloat bool
}

// AsFloat returns the value widened to float64.
func (v Value) AsFloat() float64 {
	if v.IsFloat {
		return v.Float
	}

	return float64(v.Int)
}

// Interface returns the value as int64 or float64, which is how it is
// encoded in API responses.
func (v Value) Interface() any {
	if v.IsFloat {
		return v.Float
	}

	return v.Int
}

// Fields maps rule field names to the values found in one line.
type Fields map[string]Value

// Float returns the named field widened to float64.
func (f Fields) Float(name string) (float64, bool) {
	v, ok := f[name]
	if !ok {
		return 0, false
	}

	return v.AsFloat(), true
}

// Int returns the named field if it was parsed as an integer.
func (f Fields) Int(name string) (int64, bool) {
	v, ok := f[name]
	if !ok || v.IsFloat {
		return 0, false
	}

	return v.Int, true
}

// Extract evaluates every rule against line independently. Rules that do
// not match, or whose token does not parse as a number, are left out.
func Extract(line string, rules []Rule) Fields {
	out := make(Fields)

	for _, r := range rules {
		m := r.Pattern.FindStringSubmatch(line)
		if len(m) < 2 {
			continue
		}

		if v, ok := ParseValue(m[1]); ok {
			out[r.Field] = v
		}
	}

	return out
}

// ParseValue types a token: float when it contains '.', integer otherwise.
func ParseValue(token string) (Value, bool) {
	if strings.Contains(token, ".") {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Value{}, false
		}

		return Value{Float: f, IsFloat: true}, true
	}

	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return Value{}, false
	}

	return Value{Int: n}, true
}

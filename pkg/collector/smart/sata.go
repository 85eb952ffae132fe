// Copyright (c) 2025, the pvemetrics authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package smart

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/pvetools/pvemetrics/pkg/measurement"
)

// Well-known SATA SMART attribute ids that need non-raw extraction. This is
// a closed dispatch table: SMART raw values are vendor-encoded except for
// these two cases where the display string or the normalized health score is
// the only reliable signal.
const (
	attrIDTemperatureCelsius    = 194
	attrIDPercentLifetimeRemain = 202
)

var firstDigitsPattern = regexp.MustCompile(`\d+`)

// normalizeSATA extracts the ATA SMART attribute table. Field keys are the
// lower-cased attribute names with hyphens replaced by underscores.
//
// Extraction policy by attribute id:
//   - 194 (temperature): the raw numeric value packs min/max into high bits,
//     so the current temperature is parsed out of the display string instead.
//   - 202 (percent lifetime remaining): the normalized 0-100 score.
//   - everything else: the raw numeric value as-is.
func normalizeSATA(host, disk string, data map[string]any) measurement.Measurement {
	m := newDiskMeasurement(host, disk)

	attrs, _ := data["ata_smart_attributes"].(map[string]any)
	table, _ := attrs["table"].([]any)

	for _, entry := range table {
		attr, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		id, ok := attr["id"].(float64)
		if !ok {
			continue
		}
		name, ok := attr["name"].(string)
		if !ok {
			continue
		}
		key := strings.ToLower(strings.ReplaceAll(name, "-", "_"))
		raw, _ := attr["raw"].(map[string]any)

		switch int(id) {
		case attrIDTemperatureCelsius:
			rawString, _ := raw["string"].(string)
			v, ok := firstNumber(rawString)
			if !ok {
				slog.Debug("no parseable temperature in raw string, skipping field",
					"disk", disk, "attribute", key, "raw", rawString)
				continue
			}
			m.Fields[key] = v
		case attrIDPercentLifetimeRemain:
			if v, ok := attr["value"].(float64); ok {
				m.Fields[key] = v
			}
		default:
			if v, ok := raw["value"].(float64); ok {
				m.Fields[key] = v
			}
		}
	}
	return m
}

// firstNumber parses the first run of decimal digits out of a SMART raw
// display string like "41 (Min/Max 24/44)".
func firstNumber(s string) (float64, bool) {
	digits := firstDigitsPattern.FindString(s)
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

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

package sensors

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/pvetools/pvemetrics/pkg/measurement"
	"github.com/pvetools/pvemetrics/pkg/probe"
)

// adapterKey is the one chip entry that is a plain string, not a reading
// group; it becomes the adapter tag.
const adapterKey = "Adapter"

// tempIndexPattern strips the numeric index after a "temp" reading prefix so
// chips with differently numbered temp channels share one field schema
// (temp2_input -> temp_input, temp6_max -> temp_max). Grouping-key-derived
// prefixes like core_0_ are untouched since their digit is not preceded by
// "temp". The substitution is idempotent.
var tempIndexPattern = regexp.MustCompile(`temp\d+_`)

// Collector normalizes the lm-sensors chip tree into one measurement per chip.
type Collector struct {
	Host   string
	Reader probe.SensorReader
}

// Collect reads the sensor tree and normalizes it. A failed read costs this
// cycle's sensor data only; it is never fatal for the batch.
func (c *Collector) Collect(ctx context.Context) ([]measurement.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chips, err := c.Reader.Read(ctx)
	if err != nil {
		slog.Warn("sensor read failed, continuing without sensor data", "error", err)
		return nil, nil
	}

	return Normalize(c.Host, chips), nil
}

// Normalize converts the nested chip tree into a flat measurement list, one
// per chip, in sorted chip-identifier order for reproducible batches.
//
// A chip identifier like "coretemp-isa-0000" names the measurement
// "sensors.coretemp". Every grouping key other than "Adapter" contributes its
// readings as fields; chips without numeric readings still emit a measurement
// with an empty field map.
func Normalize(host string, chips map[string]any) []measurement.Measurement {
	ids := make([]string, 0, len(chips))
	for id := range chips {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]measurement.Measurement, 0, len(ids))
	for _, id := range ids {
		details, ok := chips[id].(map[string]any)
		if !ok {
			slog.Warn("skipping malformed sensor chip entry", "chip", id)
			continue
		}
		out = append(out, normalizeChip(host, id, details))
	}
	return out
}

func normalizeChip(host, id string, details map[string]any) measurement.Measurement {
	prefix, _, _ := strings.Cut(id, "-")
	m := measurement.New(measurement.NamePrefixSensors + prefix)
	m.Tags[measurement.TagHost] = host
	if adapter, ok := details[adapterKey].(string); ok {
		m.Tags[measurement.TagAdapter] = adapter
	}

	for group, readings := range details {
		if group == adapterKey {
			continue
		}
		labels, ok := readings.(map[string]any)
		if !ok {
			continue
		}
		for label, value := range labels {
			v, ok := value.(float64)
			if !ok {
				slog.Debug("skipping non-numeric sensor reading", "chip", id, "label", label)
				continue
			}
			m.Fields[fieldKey(group, label)] = v
		}
	}
	return m
}

// fieldKey composes the field key from grouping key and reading label, then
// applies the temp-index strip as a final pass over the composed key.
//
// The "temp1" grouping key gets special treatment: its labels already repeat
// the group name (temp1_input inside temp1), so prefixing would double it.
func fieldKey(group, label string) string {
	var key string
	if group == "temp1" && strings.Contains(strings.ToLower(label), "temp1") {
		key = strings.ToLower(label)
	} else {
		key = strings.ToLower(strings.ReplaceAll(group, " ", "_")) + "_" + strings.ToLower(label)
	}
	return tempIndexPattern.ReplaceAllString(key, "temp_")
}

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
	"fmt"
	"log/slog"

	"github.com/pvetools/pvemetrics/pkg/measurement"
)

// healthLogKey is the smartctl JSON key holding the NVMe health page.
const healthLogKey = "nvme_smart_health_information_log"

// normalizeNVMe extracts the NVMe SMART health log. Scalar attributes pass
// through keyed by attribute name; list-valued attributes (multiple
// temperature sensors) are exploded into one field per element with a
// 1-based index suffix.
func normalizeNVMe(host, disk string, data map[string]any) measurement.Measurement {
	m := newDiskMeasurement(host, disk)

	healthLog, _ := data[healthLogKey].(map[string]any)
	for key, value := range healthLog {
		switch v := value.(type) {
		case float64:
			m.Fields[key] = v
		case []any:
			for i, item := range v {
				f, ok := item.(float64)
				if !ok {
					slog.Debug("skipping non-numeric NVMe list element", "disk", disk, "attribute", key)
					continue
				}
				m.Fields[fmt.Sprintf("%s_%d", key, i+1)] = f
			}
		default:
			slog.Debug("skipping non-numeric NVMe attribute", "disk", disk, "attribute", key)
		}
	}
	return m
}

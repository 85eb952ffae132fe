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

package probe

import (
	"context"
	"encoding/json"
	"log/slog"
)

// ExecSensorReader reads the sensor-chip tree via `sensors -j` (lm-sensors).
type ExecSensorReader struct{}

// Read returns the parsed chip tree. Malformed JSON degrades to an empty
// tree (logged), so a broken sensors install costs one cycle of sensor data,
// not the whole collection.
func (r *ExecSensorReader) Read(ctx context.Context) (map[string]any, error) {
	out, err := runCommand(ctx, sensorsPath, "-j")
	if err != nil {
		return nil, err
	}
	return parseSensors(out), nil
}

func parseSensors(out []byte) map[string]any {
	var data map[string]any
	if err := json.Unmarshal(out, &data); err != nil {
		slog.Error("failed to parse sensors JSON output", "error", err)
		return map[string]any{}
	}
	return data
}

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

// ExecSMARTReader reads per-disk SMART attributes via `smartctl -A -j`
// (smartmontools).
type ExecSMARTReader struct{}

// Read returns the parsed SMART document for /dev/<disk>. Malformed JSON
// degrades to an empty document (logged); the disk still emits a measurement
// with an empty field map.
func (r *ExecSMARTReader) Read(ctx context.Context, disk string) (map[string]any, error) {
	out, err := runCommand(ctx, smartctlPath, "-A", "-j", "/dev/"+disk)
	if err != nil {
		return nil, err
	}
	return parseSMART(disk, out), nil
}

func parseSMART(disk string, out []byte) map[string]any {
	var data map[string]any
	if err := json.Unmarshal(out, &data); err != nil {
		slog.Error("failed to parse smartctl JSON output", "disk", disk, "error", err)
		return map[string]any{}
	}
	return data
}

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
	"fmt"
)

// ExecDiskLister enumerates physical disks via `lsblk -J -o NAME,TYPE`.
type ExecDiskLister struct{}

// List returns disk device names in lsblk order. Unlike the other probes,
// any failure here is an error: without the disk inventory, SMART collection
// has no valid input set.
func (l *ExecDiskLister) List(ctx context.Context) ([]string, error) {
	out, err := runCommand(ctx, lsblkPath, "-J", "-o", "NAME,TYPE")
	if err != nil {
		return nil, err
	}
	return parseBlockDevices(out)
}

func parseBlockDevices(out []byte) ([]string, error) {
	var result struct {
		BlockDevices []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"blockdevices"`
	}
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("failed to parse lsblk JSON output: %w", err)
	}

	disks := make([]string, 0, len(result.BlockDevices))
	for _, dev := range result.BlockDevices {
		if dev.Type == "disk" {
			disks = append(disks, dev.Name)
		}
	}
	return disks, nil
}

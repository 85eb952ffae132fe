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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
)

// Absolute paths so the collector behaves the same under cron/systemd timers
// with a minimal PATH. Package vars to allow stubbing in tests.
var (
	sensorsPath  = "/usr/bin/sensors"
	lsblkPath    = "/usr/bin/lsblk"
	smartctlPath = "/usr/sbin/smartctl"
	qmPath       = "/usr/sbin/qm"
)

// VM identifies a running virtual machine.
type VM struct {
	ID   string
	Name string
}

// FSInfo is one filesystem record reported by the VM guest agent.
type FSInfo struct {
	Name       string `json:"name"`
	Mountpoint string `json:"mountpoint"`
	UsedBytes  int64  `json:"used-bytes"`
}

// SensorReader reads the sensor-chip tree from the host.
type SensorReader interface {
	Read(ctx context.Context) (map[string]any, error)
}

// DiskLister enumerates physical disk names in stable order.
type DiskLister interface {
	List(ctx context.Context) ([]string, error)
}

// SMARTReader reads SMART health data for a single disk.
type SMARTReader interface {
	Read(ctx context.Context, disk string) (map[string]any, error)
}

// VMLister enumerates currently running VMs.
type VMLister interface {
	List(ctx context.Context) ([]VM, error)
}

// FSInfoReader reads filesystem info from one VM's guest agent. An empty
// result means the VM was unreachable or reported nothing; callers skip the
// VM rather than failing.
type FSInfoReader interface {
	Read(ctx context.Context, vmid string) ([]FSInfo, error)
}

// runCommand executes the tool at path and returns its stdout. On failure
// the error includes trimmed stderr for operator-readable logs.
func runCommand(ctx context.Context, path string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s failed: %w: %s",
				filepath.Base(path), err, bytes.TrimSpace(exitErr.Stderr))
		}
		return nil, fmt.Errorf("%s failed: %w", filepath.Base(path), err)
	}
	return out, nil
}

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
	"strings"
)

// vmRunningState is the qm list status of a started VM.
const vmRunningState = "running"

// ExecVMLister enumerates running VMs via `qm list`.
//
// The output is a fixed-width text table:
//
//	VMID NAME        STATUS     MEM(MB)  BOOTDISK(GB) PID
//	 100 vm-web      running    4096     32.00        1234
type ExecVMLister struct{}

// List returns (vmid, name) pairs of running VMs in listing order.
func (l *ExecVMLister) List(ctx context.Context) ([]VM, error) {
	out, err := runCommand(ctx, qmPath, "list")
	if err != nil {
		return nil, err
	}
	return parseVMList(string(out)), nil
}

func parseVMList(out string) []VM {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return nil
	}

	vms := make([]VM, 0, len(lines)-1)
	for _, line := range lines[1:] { // skip header row
		if !strings.Contains(line, vmRunningState) {
			continue
		}
		cols := strings.Fields(line)
		if len(cols) < 3 {
			continue
		}
		vms = append(vms, VM{ID: cols[0], Name: cols[1]})
	}
	return vms
}

// ExecFSInfoReader reads per-VM filesystem usage via the QEMU guest agent
// (`qm agent <vmid> get-fsinfo`).
type ExecFSInfoReader struct{}

// Read returns the VM's filesystem records. A VM without a responding guest
// agent (shut down mid-cycle, agent not installed, timeout) surfaces as an
// error; callers skip that VM and continue.
func (r *ExecFSInfoReader) Read(ctx context.Context, vmid string) ([]FSInfo, error) {
	out, err := runCommand(ctx, qmPath, "agent", vmid, "get-fsinfo")
	if err != nil {
		return nil, err
	}
	return parseFSInfo(vmid, out), nil
}

func parseFSInfo(vmid string, out []byte) []FSInfo {
	var records []FSInfo
	if err := json.Unmarshal(out, &records); err != nil {
		slog.Error("failed to parse guest agent fsinfo output", "vmid", vmid, "error", err)
		return nil
	}
	return records
}

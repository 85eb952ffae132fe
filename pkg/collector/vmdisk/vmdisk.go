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

package vmdisk

import (
	"context"
	"log/slog"

	"github.com/pvetools/pvemetrics/pkg/errors"
	"github.com/pvetools/pvemetrics/pkg/measurement"
	"github.com/pvetools/pvemetrics/pkg/probe"
)

// Root filesystem selector: the guest's first SCSI disk partition mounted
// at /. Anything else (EFI partitions, /boot, bind mounts) is ignored.
const (
	rootFSName       = "sda1"
	rootFSMountpoint = "/"
)

// qemuObject mirrors the hypervisor's own "system" measurement tagging so
// both series line up in the same dashboard.
const qemuObject = "qemu"

// Collector produces one root-filesystem usage measurement per running VM.
type Collector struct {
	// Host is the physical hypervisor node; it becomes the nodename tag.
	Host   string
	VMs    probe.VMLister
	FSInfo probe.FSInfoReader
}

// Collect enumerates running VMs and normalizes each one's filesystem info.
// VM enumeration failure is fatal for the cycle; an unreachable guest agent
// skips that one VM.
func (c *Collector) Collect(ctx context.Context) ([]measurement.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vms, err := c.VMs.List(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEnumeration, "cannot enumerate running VMs", err)
	}

	out := make([]measurement.Measurement, 0, len(vms))
	for _, vm := range vms {
		records, err := c.FSInfo.Read(ctx, vm.ID)
		if err != nil {
			slog.Warn("guest agent unreachable, skipping VM", "vmid", vm.ID, "name", vm.Name, "error", err)
			continue
		}
		if m := Normalize(c.Host, vm.ID, vm.Name, records); m != nil {
			out = append(out, *m)
		}
	}
	return out, nil
}

// Normalize sums used-bytes over root filesystem records into a single
// "disk" field. The measurement is named "system" and tagged with the VM
// name as host, the physical node as nodename, and the vmid, matching the
// hypervisor's built-in metric shape while supplying a more accurate
// root-filesystem number than the hypervisor's own reporting.
//
// An empty record list (VM unreachable or agent silent) yields nil: no
// measurement is emitted for that VM. A non-empty list without a matching
// root record yields disk == 0.
func Normalize(node, vmid, vmName string, records []probe.FSInfo) *measurement.Measurement {
	if len(records) == 0 {
		return nil
	}

	var totalUsed int64
	for _, fs := range records {
		if fs.Name == rootFSName && fs.Mountpoint == rootFSMountpoint {
			totalUsed += fs.UsedBytes
		}
	}

	m := measurement.New(measurement.NameSystem)
	m.Tags[measurement.TagHost] = vmName
	m.Tags[measurement.TagNodename] = node
	m.Tags[measurement.TagObject] = qemuObject
	m.Tags[measurement.TagVMID] = vmid
	m.Fields["disk"] = float64(totalUsed)
	return &m
}

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
	"context"
	"log/slog"
	"strings"

	"github.com/pvetools/pvemetrics/pkg/errors"
	"github.com/pvetools/pvemetrics/pkg/measurement"
	"github.com/pvetools/pvemetrics/pkg/probe"
)

// nvmePrefix routes a disk name to the NVMe extractor; everything else is
// treated as SATA/ATA.
const nvmePrefix = "nvme"

// Collector produces one SMART measurement per enumerated disk.
type Collector struct {
	Host   string
	Disks  probe.DiskLister
	Reader probe.SMARTReader
}

// Collect enumerates disks and normalizes each one's SMART data. Enumeration
// failure is fatal for the cycle; a single disk's failed read skips that
// disk only.
func (c *Collector) Collect(ctx context.Context) ([]measurement.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	disks, err := c.Disks.List(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEnumeration, "cannot enumerate disks", err)
	}

	out := make([]measurement.Measurement, 0, len(disks))
	for _, disk := range disks {
		name := TrimNamespace(disk)
		data, err := c.Reader.Read(ctx, name)
		if err != nil {
			slog.Warn("SMART read failed, skipping disk", "disk", name, "error", err)
			continue
		}
		out = append(out, Normalize(c.Host, name, data))
	}
	return out, nil
}

// Normalize dispatches on the disk name prefix to the technology-specific
// extractor. Both name the measurement "smartctl.<disk>" with a host tag.
func Normalize(host, disk string, data map[string]any) measurement.Measurement {
	if strings.HasPrefix(disk, nvmePrefix) {
		return normalizeNVMe(host, disk, data)
	}
	return normalizeSATA(host, disk, data)
}

// TrimNamespace maps an NVMe namespace block device to its controller name
// ("nvme0n1" -> "nvme0"); SMART health is reported per controller, not per
// namespace. Non-NVMe names pass through unchanged.
func TrimNamespace(disk string) string {
	if !strings.HasPrefix(disk, nvmePrefix) {
		return disk
	}
	if i := strings.LastIndex(disk, "n"); i >= len(nvmePrefix) {
		return disk[:i]
	}
	return disk
}

func newDiskMeasurement(host, disk string) measurement.Measurement {
	m := measurement.New(measurement.NamePrefixSMART + disk)
	m.Tags[measurement.TagHost] = host
	return m
}

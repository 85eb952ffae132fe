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

package gatherer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvetools/pvemetrics/pkg/collector"
	"github.com/pvetools/pvemetrics/pkg/collector/sensors"
	"github.com/pvetools/pvemetrics/pkg/collector/smart"
	"github.com/pvetools/pvemetrics/pkg/collector/vmdisk"
	"github.com/pvetools/pvemetrics/pkg/measurement"
	"github.com/pvetools/pvemetrics/pkg/probe"
)

type stubCollector struct {
	name string
	ms   []measurement.Measurement
	err  error
	ran  *[]string
}

func (s *stubCollector) Collect(ctx context.Context) ([]measurement.Measurement, error) {
	*s.ran = append(*s.ran, s.name)
	return s.ms, s.err
}

type stubFactory struct {
	sensors collector.Collector
	smart   collector.Collector
	vmdisk  collector.Collector
}

func (f *stubFactory) CreateSensorsCollector() collector.Collector { return f.sensors }
func (f *stubFactory) CreateSMARTCollector() collector.Collector   { return f.smart }
func (f *stubFactory) CreateVMDiskCollector() collector.Collector  { return f.vmdisk }

func namedMeasurement(name string) measurement.Measurement {
	m := measurement.New(name)
	m.Tags[measurement.TagHost] = "pve1"
	return m
}

func TestGatherOrderAndConcatenation(t *testing.T) {
	var ran []string
	factory := &stubFactory{
		sensors: &stubCollector{name: "sensors", ran: &ran, ms: []measurement.Measurement{namedMeasurement("sensors.coretemp")}},
		smart:   &stubCollector{name: "smart", ran: &ran, ms: []measurement.Measurement{namedMeasurement("smartctl.sda"), namedMeasurement("smartctl.nvme0")}},
		vmdisk:  &stubCollector{name: "vmdisk", ran: &ran, ms: []measurement.Measurement{namedMeasurement("system")}},
	}

	g := &HostGatherer{Host: "pve1", VMDisk: true, Factory: factory}
	got, err := g.Gather(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{"sensors", "smart", "vmdisk"}, ran)
	names := make([]string, 0, len(got))
	for _, m := range got {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"sensors.coretemp", "smartctl.sda", "smartctl.nvme0", "system"}, names)
}

func TestGatherSkipsVMDiskWhenDisabled(t *testing.T) {
	var ran []string
	factory := &stubFactory{
		sensors: &stubCollector{name: "sensors", ran: &ran},
		smart:   &stubCollector{name: "smart", ran: &ran},
		vmdisk:  &stubCollector{name: "vmdisk", ran: &ran},
	}

	g := &HostGatherer{Host: "pve1", Factory: factory}
	got, err := g.Gather(t.Context())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, []string{"sensors", "smart"}, ran)
}

func TestGatherAbortsOnCollectorError(t *testing.T) {
	var ran []string
	factory := &stubFactory{
		sensors: &stubCollector{name: "sensors", ran: &ran, ms: []measurement.Measurement{namedMeasurement("sensors.coretemp")}},
		smart:   &stubCollector{name: "smart", ran: &ran, err: errors.New("lsblk not found")},
		vmdisk:  &stubCollector{name: "vmdisk", ran: &ran},
	}

	g := &HostGatherer{Host: "pve1", VMDisk: true, Factory: factory}
	got, err := g.Gather(t.Context())
	assert.Error(t, err)
	assert.Nil(t, got)
	// vmdisk never runs once SMART enumeration fails
	assert.Equal(t, []string{"sensors", "smart"}, ran)
}

// Probe-level stubs for the end-to-end case below.

type fixedSensorReader struct{ chips map[string]any }

func (r *fixedSensorReader) Read(ctx context.Context) (map[string]any, error) {
	return r.chips, nil
}

type fixedDiskLister struct{ disks []string }

func (l *fixedDiskLister) List(ctx context.Context) ([]string, error) { return l.disks, nil }

type fixedSMARTReader struct{ data map[string]map[string]any }

func (r *fixedSMARTReader) Read(ctx context.Context, disk string) (map[string]any, error) {
	return r.data[disk], nil
}

type fixedVMLister struct{ vms []probe.VM }

func (l *fixedVMLister) List(ctx context.Context) ([]probe.VM, error) { return l.vms, nil }

type fixedFSInfoReader struct{}

func (r *fixedFSInfoReader) Read(ctx context.Context, vmid string) ([]probe.FSInfo, error) {
	return nil, nil
}

type probeFactory struct{ host string }

func (f *probeFactory) CreateSensorsCollector() collector.Collector {
	return &sensors.Collector{Host: f.host, Reader: &fixedSensorReader{chips: map[string]any{}}}
}

func (f *probeFactory) CreateSMARTCollector() collector.Collector {
	return &smart.Collector{
		Host:   f.host,
		Disks:  &fixedDiskLister{disks: []string{"sda"}},
		Reader: &fixedSMARTReader{data: map[string]map[string]any{"sda": {}}},
	}
}

func (f *probeFactory) CreateVMDiskCollector() collector.Collector {
	return &vmdisk.Collector{Host: f.host, VMs: &fixedVMLister{}, FSInfo: &fixedFSInfoReader{}}
}

// A node with no readable sensors, a single silent disk, and no running VMs
// still yields a batch with one empty-fields disk measurement.
func TestGatherSparseNode(t *testing.T) {
	g := &HostGatherer{Host: "pve1", VMDisk: true, Factory: &probeFactory{host: "pve1"}}

	got, err := g.Gather(t.Context())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "smartctl.sda", got[0].Name)
	assert.Equal(t, "pve1", got[0].Tags[measurement.TagHost])
	assert.Empty(t, got[0].Fields)
}

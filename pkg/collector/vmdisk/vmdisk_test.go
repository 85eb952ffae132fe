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
	"errors"
	"testing"

	"github.com/pvetools/pvemetrics/pkg/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		records  []probe.FSInfo
		wantNil  bool
		wantDisk float64
	}{
		{
			name:    "empty records yields no measurement",
			records: nil,
			wantNil: true,
		},
		{
			name: "root filesystem summed",
			records: []probe.FSInfo{
				{Name: "sda1", Mountpoint: "/", UsedBytes: 5368709120},
			},
			wantDisk: 5368709120,
		},
		{
			name: "non-root records ignored",
			records: []probe.FSInfo{
				{Name: "sda1", Mountpoint: "/", UsedBytes: 1024},
				{Name: "sda2", Mountpoint: "/boot", UsedBytes: 2048},
				{Name: "sda1", Mountpoint: "/mnt/data", UsedBytes: 4096},
			},
			wantDisk: 1024,
		},
		{
			name: "multiple root records accumulate",
			records: []probe.FSInfo{
				{Name: "sda1", Mountpoint: "/", UsedBytes: 100},
				{Name: "sda1", Mountpoint: "/", UsedBytes: 200},
			},
			wantDisk: 300,
		},
		{
			name: "no matching record reports zero",
			records: []probe.FSInfo{
				{Name: "vda1", Mountpoint: "/", UsedBytes: 9000},
			},
			wantDisk: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := Normalize("pve1", "101", "webserver", tc.records)
			if tc.wantNil {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			assert.Equal(t, "system", m.Name)
			assert.Equal(t, map[string]string{
				"host":     "webserver",
				"nodename": "pve1",
				"object":   "qemu",
				"vmid":     "101",
			}, m.Tags)
			assert.Equal(t, map[string]float64{"disk": tc.wantDisk}, m.Fields)
			assert.NoError(t, m.Validate())
		})
	}
}

type stubVMLister struct {
	vms []probe.VM
	err error
}

func (s *stubVMLister) List(ctx context.Context) ([]probe.VM, error) {
	return s.vms, s.err
}

type stubFSInfoReader struct {
	records map[string][]probe.FSInfo
	errs    map[string]error
	seen    []string
}

func (s *stubFSInfoReader) Read(ctx context.Context, vmid string) ([]probe.FSInfo, error) {
	s.seen = append(s.seen, vmid)
	if err := s.errs[vmid]; err != nil {
		return nil, err
	}
	return s.records[vmid], nil
}

func TestCollect(t *testing.T) {
	lister := &stubVMLister{
		vms: []probe.VM{
			{ID: "101", Name: "webserver"},
			{ID: "102", Name: "database"},
			{ID: "103", Name: "builder"},
		},
	}
	reader := &stubFSInfoReader{
		records: map[string][]probe.FSInfo{
			"101": {{Name: "sda1", Mountpoint: "/", UsedBytes: 1000}},
			"103": {}, // agent answered but reported nothing
		},
		errs: map[string]error{
			"102": errors.New("guest agent timed out"),
		},
	}

	c := &Collector{Host: "pve1", VMs: lister, FSInfo: reader}
	got, err := c.Collect(t.Context())
	require.NoError(t, err)

	// 102 errored and 103 was empty, so only 101 survives.
	require.Len(t, got, 1)
	assert.Equal(t, "101", got[0].Tags["vmid"])
	assert.Equal(t, 1000.0, got[0].Fields["disk"])
	assert.Equal(t, []string{"101", "102", "103"}, reader.seen)
}

func TestCollectEnumerationFailure(t *testing.T) {
	c := &Collector{
		Host:   "pve1",
		VMs:    &stubVMLister{err: errors.New("qm not found")},
		FSInfo: &stubFSInfoReader{},
	}
	got, err := c.Collect(t.Context())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestCollectNoVMs(t *testing.T) {
	c := &Collector{
		Host:   "pve1",
		VMs:    &stubVMLister{},
		FSInfo: &stubFSInfoReader{},
	}
	got, err := c.Collect(t.Context())
	require.NoError(t, err)
	assert.Empty(t, got)
}

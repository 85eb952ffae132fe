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

package measurement

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Measurement
		wantErr bool
	}{
		{
			name: "valid with fields",
			m: Measurement{
				Name:   "smartctl.sda",
				Tags:   map[string]string{TagHost: "pve1"},
				Fields: map[string]float64{"power_on_hours": 4242},
			},
		},
		{
			name: "valid with empty field map",
			m: Measurement{
				Name:   "smartctl.sda",
				Tags:   map[string]string{TagHost: "pve1"},
				Fields: map[string]float64{},
			},
		},
		{
			name: "valid VM measurement",
			m: Measurement{
				Name: NameSystem,
				Tags: map[string]string{
					TagHost:     "vm-web",
					TagNodename: "pve1",
					TagObject:   "qemu",
					TagVMID:     "100",
				},
				Fields: map[string]float64{"disk": 2426138624},
			},
		},
		{
			name: "missing name",
			m: Measurement{
				Tags:   map[string]string{TagHost: "pve1"},
				Fields: map[string]float64{},
			},
			wantErr: true,
		},
		{
			name: "missing host tag",
			m: Measurement{
				Name:   "sensors.coretemp",
				Tags:   map[string]string{TagAdapter: "ISA adapter"},
				Fields: map[string]float64{},
			},
			wantErr: true,
		},
		{
			name: "field key with space",
			m: Measurement{
				Name:   "sensors.coretemp",
				Tags:   map[string]string{TagHost: "pve1"},
				Fields: map[string]float64{"core 0_temp_input": 42},
			},
			wantErr: true,
		},
		{
			name: "field key with upper case",
			m: Measurement{
				Name:   "sensors.coretemp",
				Tags:   map[string]string{TagHost: "pve1"},
				Fields: map[string]float64{"Core_0_temp_input": 42},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFieldKeysSorted(t *testing.T) {
	m := Measurement{
		Name: "sensors.nvme",
		Tags: map[string]string{TagHost: "pve1"},
		Fields: map[string]float64{
			"temp_input":           35.85,
			"composite_temp_input": 36,
			"sensor_2_temp_input":  42,
		},
	}

	keys := m.FieldKeys()
	want := []string{"composite_temp_input", "sensor_2_temp_input", "temp_input"}
	if len(keys) != len(want) {
		t.Fatalf("FieldKeys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("FieldKeys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestString(t *testing.T) {
	m := Measurement{
		Name:   "smartctl.nvme0",
		Tags:   map[string]string{TagHost: "pve1"},
		Fields: map[string]float64{"temperature": 41},
	}

	got := m.String()
	want := "smartctl.nvme0,host=pve1 temperature=41"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewInitializesMaps(t *testing.T) {
	m := New("system")
	if m.Tags == nil || m.Fields == nil {
		t.Fatal("New() must initialize tag and field maps")
	}
	if m.HasField("disk") {
		t.Error("fresh measurement should have no fields")
	}
}

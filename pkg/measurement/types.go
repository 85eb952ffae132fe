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
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common tag keys exported for consistency and type safety.
const (
	// TagHost identifies the machine the measurement describes. For VM
	// measurements this is the VM name, not the physical node.
	TagHost = "host"

	// TagAdapter identifies the sensor bus adapter (e.g. "ISA adapter").
	TagAdapter = "adapter"

	// TagNodename identifies the physical hypervisor node on VM measurements.
	TagNodename = "nodename"

	// TagObject mirrors the hypervisor's own metric shape ("qemu").
	TagObject = "object"

	// TagVMID is the numeric VM identifier assigned by the hypervisor.
	TagVMID = "vmid"
)

// Measurement name prefixes and fixed names.
const (
	// NamePrefixSensors prefixes per-chip sensor measurements (e.g. "sensors.coretemp").
	NamePrefixSensors = "sensors."

	// NamePrefixSMART prefixes per-disk SMART measurements (e.g. "smartctl.sda").
	NamePrefixSMART = "smartctl."

	// NameSystem is the fixed name of VM disk measurements. It intentionally
	// matches the hypervisor's built-in metric shape so both series can be
	// compared in the same dashboard.
	NameSystem = "system"
)

// Measurement is the atomic unit written to the time-series store: a
// dot-namespaced name, a low-cardinality tag set, and a numeric field map.
//
// Measurements are immutable value records constructed fresh each collection
// cycle; they carry no cross-cycle identity.
type Measurement struct {
	Name   string             `json:"measurement" yaml:"measurement"`
	Tags   map[string]string  `json:"tags" yaml:"tags"`
	Fields map[string]float64 `json:"fields" yaml:"fields"`
}

// New creates a Measurement with initialized tag and field maps.
func New(name string) Measurement {
	return Measurement{
		Name:   name,
		Tags:   make(map[string]string),
		Fields: make(map[string]float64),
	}
}

// Validate checks if the measurement is properly formed: a non-empty name,
// a host tag, and lower-case, space-free field keys. An empty field map is
// valid (a chip or disk may report no readings at all).
func (m *Measurement) Validate() error {
	if m.Name == "" {
		return errors.New("measurement name cannot be empty")
	}
	if m.Tags[TagHost] == "" {
		return fmt.Errorf("measurement %q must carry a %s tag", m.Name, TagHost)
	}
	for key := range m.Fields {
		if key == "" {
			return fmt.Errorf("measurement %q has an empty field key", m.Name)
		}
		if strings.ContainsAny(key, " \t") || key != strings.ToLower(key) {
			return fmt.Errorf("measurement %q field key %q is not normalized", m.Name, key)
		}
	}
	return nil
}

// FieldKeys returns the field keys in sorted order for reproducible output.
func (m *Measurement) FieldKeys() []string {
	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TagKeys returns the tag keys in sorted order.
func (m *Measurement) TagKeys() []string {
	keys := make([]string, 0, len(m.Tags))
	for k := range m.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasField checks if a field key exists in the measurement.
func (m *Measurement) HasField(key string) bool {
	_, exists := m.Fields[key]
	return exists
}

// String renders a compact single-line form, useful in logs and test failures.
func (m *Measurement) String() string {
	var b strings.Builder
	b.WriteString(m.Name)
	for _, k := range m.TagKeys() {
		fmt.Fprintf(&b, ",%s=%s", k, m.Tags[k])
	}
	b.WriteString(" ")
	for i, k := range m.FieldKeys() {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%s=%v", k, m.Fields[k])
	}
	return b.String()
}

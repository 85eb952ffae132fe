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

// Package measurement defines the uniform record every collector normalizes
// into: a dot-namespaced name (e.g. "sensors.coretemp", "smartctl.sda"),
// a string tag set used for indexing in the store, and a numeric field map
// holding the measured quantities.
//
// Field keys are lower-case, space-free, and derived deterministically by the
// collectors so that two distinct semantic readings never collapse to the
// same key within one measurement. Field values are always numeric; raw
// strings from the underlying tools never survive normalization.
//
// Tag and name constants are exported here so collectors, publisher, and
// tests agree on the schema:
//
//	m := measurement.New(measurement.NamePrefixSMART + "sda")
//	m.Tags[measurement.TagHost] = "pve1"
//	m.Fields["power_on_hours"] = 4242
package measurement

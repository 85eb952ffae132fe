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

// Package probe invokes the system utilities that expose hardware and VM
// health data: sensors (lm-sensors), lsblk, smartctl (smartmontools), and
// qm (Proxmox). It returns their output as already-parsed, semi-structured
// data.
//
// Each utility sits behind a one-method interface so the collectors stay
// pure functions over captured data and tests never need the real tools:
//
//	SensorReader  sensors -j                → map[string]any
//	DiskLister    lsblk -J -o NAME,TYPE     → []string (type=="disk")
//	SMARTReader   smartctl -A -j /dev/<d>   → map[string]any
//	VMLister      qm list                   → []VM (running only)
//	FSInfoReader  qm agent <id> get-fsinfo  → []FSInfo
//
// Failure contract: malformed JSON from sensors or smartctl degrades to an
// empty document (logged, non-fatal); lsblk failures are errors because the
// disk inventory is required; per-VM agent failures are errors the caller
// skips.
package probe

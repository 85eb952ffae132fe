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

// Package smart normalizes smartctl JSON output into one measurement per
// disk, named "smartctl.<disk>".
//
// The schema differs by disk technology, dispatched on the device name
// prefix: NVMe devices expose a flat health log (scalars pass through,
// per-sensor temperature lists are exploded into indexed fields), while
// SATA/ATA devices expose an attribute table where the reliable signal
// depends on the attribute id (see normalizeSATA).
//
// NVMe block devices are namespaces (nvme0n1) but SMART health belongs to
// the controller (nvme0); TrimNamespace maps one to the other before
// extraction.
package smart

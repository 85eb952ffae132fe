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

// Package collector provides interfaces and implementations for gathering
// hardware and VM telemetry from a hypervisor node.
//
// # Core Interface
//
// The Collector interface defines a single method for gathering data:
//
//	type Collector interface {
//	    Collect(ctx context.Context) ([]measurement.Measurement, error)
//	}
//
// All collectors support context-based cancellation.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting collector creation:
//
//	factory := collector.NewDefaultFactory("pve1")
//	smart := factory.CreateSMARTCollector()
//
// # Available Collectors
//
// Sensors (sensors): one measurement per lm-sensors chip with normalized
// temperature, fan, and voltage field keys.
//
// SMART (smart): one measurement per physical disk from smartctl, with
// separate attribute extraction for NVMe and SATA devices.
//
// VM disk (vmdisk): one measurement per running VM reporting root
// filesystem usage via the QEMU guest agent.
//
// # Error Handling
//
// A collector distinguishes fatal failures from degraded ones: failing to
// enumerate the entities to collect from (disks, VMs) returns an error,
// while a single unreadable entity is logged and skipped.
package collector

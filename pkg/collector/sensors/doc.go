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

// Package sensors normalizes the nested lm-sensors chip tree into flat
// measurements, one per chip.
//
// Input shape (sensors -j):
//
//	{
//	  "coretemp-isa-0000": {
//	    "Adapter": "ISA adapter",
//	    "Core 0": {"temp2_input": 37.0, "temp2_max": 100.0}
//	  }
//	}
//
// becomes measurement "sensors.coretemp" tagged {host, adapter} with fields
// {core_0_temp_input: 37, core_0_temp_max: 100}. Field keys are composed
// from the grouping key and reading label, lower-cased with spaces replaced
// by underscores, then the numeric index after "temp" is stripped so chips
// with differently numbered channels share a schema.
package sensors

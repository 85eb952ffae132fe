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

// Package serializer renders measurement batches for inspection without
// touching the metrics store (the collect --test path).
//
// Supported formats:
//   - JSON: machine-readable, indented
//   - YAML: human-readable
//   - Table: flattened keys, one row per value
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, batch); err != nil { ... }
package serializer

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

// Package gatherer orchestrates a single collection cycle over all
// configured collectors and returns the combined measurement batch.
//
// Collectors run sequentially in a fixed order so that batches are
// reproducible and probe commands never race for the same hardware. Any
// collector error aborts the cycle; partial batches are never published.
package gatherer

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

// Package publisher delivers measurement batches to their destination.
//
// InfluxPublisher writes batches to an InfluxDB 2.x bucket, stamping every
// point in a batch with the same timestamp. PrintPublisher renders batches
// through a serializer for test mode, where no store is contacted.
package publisher

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

// Package logging wraps the standard library slog package with pvemetrics
// defaults: structured JSON to stderr, environment-based level configuration
// (LOG_LEVEL), module/version context on every record, and source location
// tracking for debug logs.
//
// Set the default logger early in main:
//
//	logging.SetDefaultStructuredLoggerWithLevel("pvemetrics", version, logLevel)
//	slog.Info("collection started", "host", host)
//
// Supported levels (case-insensitive): DEBUG, INFO (default), WARN/WARNING,
// ERROR.
//
// The collector typically runs from a systemd timer; when the process is
// attached to the journal (JOURNAL_STREAM), records are routed there with
// proper syslog priorities instead of JSON-on-stderr, so failures surface in
// journalctl without double timestamping.
package logging

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

package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("pvemetrics", "test", "debug")
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("debug logger should enable debug records")
	}

	logger = NewStructuredLogger("pvemetrics", "test", "error")
	if logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("error logger should not enable info records")
	}
}

func TestJournalFieldName(t *testing.T) {
	tests := []struct {
		group string
		key   string
		want  string
	}{
		{"", "module", "MODULE"},
		{"", "log-level", "LOG_LEVEL"},
		{"cycle", "id", "CYCLE_ID"},
		{"", "9lives", "F_9LIVES"},
	}

	for _, tt := range tests {
		if got := journalFieldName(tt.group, tt.key); got != tt.want {
			t.Errorf("journalFieldName(%q, %q) = %q, want %q", tt.group, tt.key, got, tt.want)
		}
	}
}

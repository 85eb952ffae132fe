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
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// journalAttached reports whether stderr is connected to the systemd journal
// and the journal socket is reachable.
func journalAttached() bool {
	return os.Getenv("JOURNAL_STREAM") != "" && journal.Enabled()
}

// journalHandler is a slog.Handler that forwards records to the systemd
// journal. Attributes become uppercase journal fields so journalctl queries
// like MODULE=pvemetrics work.
type journalHandler struct {
	level slog.Level
	attrs []slog.Attr
	group string
}

func newJournalHandler(level slog.Level) *journalHandler {
	return &journalHandler{level: level}
}

func (h *journalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *journalHandler) Handle(_ context.Context, r slog.Record) error {
	vars := make(map[string]string, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		vars[journalFieldName(h.group, a.Key)] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		vars[journalFieldName(h.group, a.Key)] = a.Value.String()
		return true
	})
	return journal.Send(r.Message, journalPriority(r.Level), vars)
}

func (h *journalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *journalHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		clone.group += "_"
	}
	clone.group += name
	return &clone
}

func journalPriority(level slog.Level) journal.Priority {
	switch {
	case level >= slog.LevelError:
		return journal.PriErr
	case level >= slog.LevelWarn:
		return journal.PriWarning
	case level >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

// journalFieldName converts an slog attribute key to a journal field name.
// Journal field names must start with a letter and contain only uppercase
// letters, digits, and underscores.
func journalFieldName(group, key string) string {
	name := key
	if group != "" {
		name = group + "_" + key
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" || out[0] >= '0' && out[0] <= '9' {
		out = fmt.Sprintf("F_%s", out)
	}
	return out
}

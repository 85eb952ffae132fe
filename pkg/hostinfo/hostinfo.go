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

// Package hostinfo resolves the hypervisor hostname used as the host tag
// on every measurement.
package hostinfo

import (
	"context"
	"log/slog"
	"os"

	"github.com/shirou/gopsutil/v4/host"
)

// Resolve determines the node hostname. An explicit override wins; otherwise
// the kernel hostname is used. The override exists so measurements keep a
// stable host tag across machine renames and reinstalls.
func Resolve(ctx context.Context, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if info, err := host.InfoWithContext(ctx); err == nil && info.Hostname != "" {
		return info.Hostname, nil
	} else if err != nil {
		slog.Debug("host info unavailable, falling back to kernel hostname", "error", err)
	}

	return os.Hostname()
}

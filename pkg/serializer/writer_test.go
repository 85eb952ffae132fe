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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvetools/pvemetrics/pkg/measurement"
)

func testBatch() []measurement.Measurement {
	return []measurement.Measurement{
		{
			Name:   "smartctl.nvme0",
			Tags:   map[string]string{measurement.TagHost: "pve1"},
			Fields: map[string]float64{"temperature": 41, "percentage_used": 3},
		},
	}
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(context.Background(), testBatch()))

	var decoded []measurement.Measurement
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "smartctl.nvme0", decoded[0].Name)
	assert.Equal(t, 41.0, decoded[0].Fields["temperature"])
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(context.Background(), testBatch()))
	assert.Contains(t, buf.String(), "measurement: smartctl.nvme0")
	assert.Contains(t, buf.String(), "host: pve1")
}

func TestSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), testBatch()))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "[0].Fields.temperature")
	assert.Contains(t, out, "41")
}

func TestSerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), []measurement.Measurement{}))
	assert.Equal(t, "<empty>", strings.TrimSpace(buf.String()))
}

func TestUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	require.NoError(t, w.Serialize(context.Background(), testBatch()))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.json")
	w := NewFileWriterOrStdout(FormatJSON, path)

	require.NoError(t, w.Serialize(context.Background(), testBatch()))
	require.NoError(t, w.Close())
	assert.FileExists(t, path)
}

func TestSerializeCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)
	require.Error(t, w.Serialize(ctx, testBatch()))
}

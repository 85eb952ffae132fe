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

package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/pvetools/pvemetrics/pkg/errors"
	"github.com/pvetools/pvemetrics/pkg/measurement"
)

// InfluxPublisher writes measurement batches to an InfluxDB 2.x bucket.
type InfluxPublisher struct {
	cfg    Config
	client influxdb2.Client
	write  api.WriteAPIBlocking
}

// NewInfluxPublisher validates the config and creates a publisher. The
// connection is lazy: the store is first contacted on Publish or Delete.
func NewInfluxPublisher(cfg Config) (*InfluxPublisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid metrics store config", err)
	}

	client := influxdb2.NewClientWithOptions(cfg.URL, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPRequestTimeout(30))
	return &InfluxPublisher{
		cfg:    cfg,
		client: client,
		write:  client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
	}, nil
}

// Publish writes the whole batch with a single shared timestamp so every
// measurement from one collection cycle lines up on the same instant.
func (p *InfluxPublisher) Publish(ctx context.Context, batch []measurement.Measurement) error {
	if len(batch) == 0 {
		slog.Debug("nothing to publish")
		return nil
	}

	now := time.Now().UTC()
	points := make([]*write.Point, 0, len(batch))
	for i := range batch {
		m := &batch[i]
		if err := m.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRequest, "refusing to publish malformed measurement", err)
		}
		fields := make(map[string]any, len(m.Fields))
		for k, v := range m.Fields {
			fields[k] = v
		}
		points = append(points, influxdb2.NewPoint(m.Name, m.Tags, fields, now))
	}

	if err := p.write.WritePoint(ctx, points...); err != nil {
		return errors.Wrap(errors.ErrCodePublish,
			fmt.Sprintf("writing %d points to bucket %q", len(points), p.cfg.Bucket), err)
	}

	slog.Debug("published batch",
		slog.Int("points", len(points)),
		slog.String("bucket", p.cfg.Bucket),
		slog.Time("timestamp", now))
	return nil
}

// Delete removes every stored point of the named measurement, from the
// epoch up to now.
func (p *InfluxPublisher) Delete(ctx context.Context, name string) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "measurement name is required")
	}

	start := time.Unix(0, 0).UTC()
	stop := time.Now().UTC()
	predicate := fmt.Sprintf("_measurement=%q", name)

	if err := p.client.DeleteAPI().DeleteWithName(ctx, p.cfg.Org, p.cfg.Bucket, start, stop, predicate); err != nil {
		return errors.Wrap(errors.ErrCodeUnavailable,
			fmt.Sprintf("deleting measurement %q from bucket %q", name, p.cfg.Bucket), err)
	}

	slog.Info("deleted measurement", slog.String("measurement", name), slog.String("bucket", p.cfg.Bucket))
	return nil
}

// Close shuts down the underlying HTTP client.
func (p *InfluxPublisher) Close() {
	p.client.Close()
}

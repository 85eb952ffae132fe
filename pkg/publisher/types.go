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
	"errors"

	"github.com/pvetools/pvemetrics/pkg/measurement"
)

// Publisher delivers a measurement batch to its destination. A batch is
// published atomically from the caller's point of view: on error the caller
// must assume none of the batch was stored.
type Publisher interface {
	// Publish writes the batch with a single timestamp.
	Publish(ctx context.Context, batch []measurement.Measurement) error

	// Delete removes all stored points of the named measurement.
	Delete(ctx context.Context, name string) error

	// Close releases any underlying connections.
	Close()
}

// Config holds the connection settings for the metrics store.
type Config struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// Validate checks that all required connection settings are present.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("metrics store URL is required")
	}
	if c.Token == "" {
		return errors.New("metrics store token is required")
	}
	if c.Org == "" {
		return errors.New("metrics store org is required")
	}
	if c.Bucket == "" {
		return errors.New("metrics store bucket is required")
	}
	return nil
}

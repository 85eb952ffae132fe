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

	"github.com/pvetools/pvemetrics/pkg/errors"
	"github.com/pvetools/pvemetrics/pkg/measurement"
	"github.com/pvetools/pvemetrics/pkg/serializer"
)

// PrintPublisher renders the batch with a serializer instead of storing it.
// Used in test mode to inspect what would be written.
type PrintPublisher struct {
	Serializer serializer.Serializer
}

// Publish serializes the batch to the configured output.
func (p *PrintPublisher) Publish(ctx context.Context, batch []measurement.Measurement) error {
	if err := p.Serializer.Serialize(ctx, batch); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "serializing batch", err)
	}
	return nil
}

// Delete is not supported when printing; there is no store to delete from.
func (p *PrintPublisher) Delete(ctx context.Context, name string) error {
	return errors.New(errors.ErrCodeInvalidRequest, "delete requires a metrics store connection")
}

// Close closes the serializer if it holds an output file.
func (p *PrintPublisher) Close() {
	if c, ok := p.Serializer.(serializer.Closer); ok {
		_ = c.Close()
	}
}

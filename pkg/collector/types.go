package collector

import (
	"context"

	"github.com/pvetools/pvemetrics/pkg/measurement"
)

// Collector gathers measurements from one hardware or VM data source.
// A collector returns all measurements it could produce in this cycle;
// a nil error with an empty slice means the source had nothing to report.
type Collector interface {
	Collect(ctx context.Context) ([]measurement.Measurement, error)
}

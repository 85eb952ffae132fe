package gatherer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pvetools/pvemetrics/pkg/collector"
	"github.com/pvetools/pvemetrics/pkg/measurement"
)

// Gatherer runs one collection cycle and returns the resulting batch.
type Gatherer interface {
	Gather(ctx context.Context) ([]measurement.Measurement, error)
}

// HostGatherer collects hardware telemetry from the current hypervisor node.
// Collectors run sequentially in a fixed order (sensors, SMART, VM disk) so
// a batch is reproducible given the same inputs and the probe commands never
// contend for the same devices.
type HostGatherer struct {
	// Host is the hypervisor hostname stamped on every measurement.
	Host string

	// VMDisk enables the guest-agent VM disk collector. It requires a
	// running guest agent in each VM, so it is opt-in.
	VMDisk bool

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory
}

// Gather runs each collector in turn, concatenating their measurements.
// A collector error aborts the cycle: partial batches are never returned,
// so a published batch always reflects a complete pass over the node.
func (g *HostGatherer) Gather(ctx context.Context) ([]measurement.Measurement, error) {
	if g.Factory == nil {
		g.Factory = collector.NewDefaultFactory(g.Host)
	}

	cycle := uuid.NewString()
	log := slog.With(slog.String("cycle", cycle), slog.String("host", g.Host))
	log.Debug("starting collection cycle")

	start := time.Now()
	defer func() {
		cycleDuration.Observe(time.Since(start).Seconds())
	}()

	stages := []struct {
		name string
		col  collector.Collector
	}{
		{"sensors", g.Factory.CreateSensorsCollector()},
		{"smart", g.Factory.CreateSMARTCollector()},
	}
	if g.VMDisk {
		stages = append(stages, struct {
			name string
			col  collector.Collector
		}{"vmdisk", g.Factory.CreateVMDiskCollector()})
	}

	batch := make([]measurement.Measurement, 0, 16)
	for _, stage := range stages {
		stageStart := time.Now()
		ms, err := stage.col.Collect(ctx)
		collectorDuration.WithLabelValues(stage.name).Observe(time.Since(stageStart).Seconds())
		if err != nil {
			log.Error("collector failed", slog.String("collector", stage.name), slog.String("error", err.Error()))
			cycleTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("collecting %s: %w", stage.name, err)
		}
		log.Debug("collector done", slog.String("collector", stage.name), slog.Int("measurements", len(ms)))
		batch = append(batch, ms...)
	}

	cycleTotal.WithLabelValues("success").Inc()
	batchSize.Set(float64(len(batch)))
	log.Debug("collection cycle complete", slog.Int("total", len(batch)))

	return batch, nil
}

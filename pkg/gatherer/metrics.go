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

package gatherer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Collection cycle metrics
	cycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pvemetrics_cycle_duration_seconds",
			Help:    "Time taken to run a complete collection cycle",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	cycleTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pvemetrics_cycle_total",
			Help: "Total number of collection cycle attempts",
		},
		[]string{"status"}, // success or error
	)

	collectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pvemetrics_collector_duration_seconds",
			Help:    "Time taken by individual collectors",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"collector"}, // sensors, smart, vmdisk
	)

	batchSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pvemetrics_batch_measurements",
			Help: "Number of measurements in the last collected batch",
		},
	)
)

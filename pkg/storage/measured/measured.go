// Copyright 2023 The converse Authors
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

package measuredrepository

import (
	"context"
	"strconv"
	"time"

	capsmodel "github.com/ortuman/converse/pkg/model/caps"
	"github.com/ortuman/converse/pkg/storage/repository"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	upsertOp = "upsert"
	fetchOp  = "fetch"
	existOp  = "exist"
)

var (
	repOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "converse",
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Total number of repository operations.",
	}, []string{"type", "success"})

	repOperationDurationBucket = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "converse",
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Repository operation duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"type", "success"})
)

func init() {
	prometheus.MustRegister(repOperations, repOperationDurationBucket)
}

// Measured is a measured Repository implementation.
type Measured struct {
	rep repository.Repository
}

// New returns a new initialized Measured repository.
func New(rep repository.Repository) repository.Repository {
	return &Measured{rep: rep}
}

// UpsertCapabilities satisfies repository.Capabilities interface.
func (m *Measured) UpsertCapabilities(ctx context.Context, key string, caps *capsmodel.Capabilities) error {
	t0 := time.Now()
	err := m.rep.UpsertCapabilities(ctx, key, caps)
	reportOpMetric(upsertOp, time.Since(t0).Seconds(), err == nil)
	return err
}

// CapabilitiesExist tells whether key capabilities have already been cached.
func (m *Measured) CapabilitiesExist(ctx context.Context, key string) (ok bool, err error) {
	t0 := time.Now()
	ok, err = m.rep.CapabilitiesExist(ctx, key)
	reportOpMetric(existOp, time.Since(t0).Seconds(), err == nil)
	return
}

// FetchCapabilities fetches the capabilities associated to key.
func (m *Measured) FetchCapabilities(ctx context.Context, key string) (caps *capsmodel.Capabilities, err error) {
	t0 := time.Now()
	caps, err = m.rep.FetchCapabilities(ctx, key)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}

// Start initializes the underlying repository.
func (m *Measured) Start(ctx context.Context) error {
	return m.rep.Start(ctx)
}

// Stop releases all underlying repository resources.
func (m *Measured) Stop(ctx context.Context) error {
	return m.rep.Stop(ctx)
}

func reportOpMetric(opType string, durationInSecs float64, success bool) {
	metricLabel := prometheus.Labels{
		"type":    opType,
		"success": strconv.FormatBool(success),
	}
	repOperations.With(metricLabel).Inc()
	repOperationDurationBucket.With(metricLabel).Observe(durationInSecs)
}

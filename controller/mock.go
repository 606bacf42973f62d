// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package controller

import (
	"context"
	"sync"

	goset "github.com/deckarep/golang-set/v2"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"

	gerrors "github.com/tochemey/kraftmock/errors"
	"github.com/tochemey/kraftmock/future"
	"github.com/tochemey/kraftmock/internal/catalog"
	"github.com/tochemey/kraftmock/internal/metric"
	"github.com/tochemey/kraftmock/log"
)

const (
	activeClaimEpoch   int64 = 1
	inactiveClaimEpoch int64 = -1
)

// MockController is an in-memory Controller for tests.
//
// The catalog operations are serialized by a single mutex. The activity flag
// is read without that mutex. All returned futures are already completed.
type MockController struct {
	mu      sync.Mutex
	catalog *catalog.Catalog

	active *atomic.Bool

	logger log.Logger

	metricProvider *metric.Provider
	registration   otelmetric.Registration
	deletedCount   *atomic.Int64
	rejectedCount  *atomic.Int64
}

// enforce compilation error
var _ Controller = (*MockController)(nil)

func newMockController(topics []Topic, opts ...Option) *MockController {
	x := &MockController{
		catalog:       catalog.New(topics...),
		active:        atomic.NewBool(true),
		logger:        log.DiscardLogger,
		deletedCount:  atomic.NewInt64(0),
		rejectedCount: atomic.NewInt64(0),
	}

	for _, opt := range opts {
		opt.Apply(x)
	}

	if err := x.registerMetrics(); err != nil {
		x.logger.Errorf("failed to register controller metrics: %v", err)
	}

	x.logger.Infof("mock controller built with %d topic(s)", len(topics))
	return x
}

// FindTopicIDs resolves each name to its topic id. Unknown names map to
// errors.ErrUnknownTopicOrPartition.
func (x *MockController) FindTopicIDs(names []string) future.Future[map[string]ResultOrError[TopicID]] {
	x.mu.Lock()
	defer x.mu.Unlock()

	results := make(map[string]ResultOrError[TopicID], len(names))
	for _, name := range names {
		if id, ok := x.catalog.ID(name); ok {
			results[name] = NewResult(id)
			continue
		}
		results[name] = NewError[TopicID](gerrors.NewErrUnknownTopicOrPartition(name))
	}

	x.logger.Debugf("resolved %d topic name(s)", len(results))
	return future.Completed(results)
}

// FindTopicNames resolves each id to its topic name. Unknown ids map to
// errors.ErrUnknownTopicID.
func (x *MockController) FindTopicNames(ids []TopicID) future.Future[map[TopicID]ResultOrError[string]] {
	x.mu.Lock()
	defer x.mu.Unlock()

	results := make(map[TopicID]ResultOrError[string], len(ids))
	for _, id := range ids {
		if name, ok := x.catalog.Name(id); ok {
			results[id] = NewResult(name)
			continue
		}
		results[id] = NewError[string](gerrors.NewErrUnknownTopicID(id))
	}

	x.logger.Debugf("resolved %d topic id(s)", len(results))
	return future.Completed(results)
}

// DeleteTopics removes the given topics from the catalog.
//
// The future fails with errors.ErrNotController when the controller is not
// active, and nothing is removed. Otherwise each id maps to nil when the topic
// was removed or to errors.ErrUnknownTopicID. Duplicate ids are handled once.
func (x *MockController) DeleteTopics(ids []TopicID) future.Future[map[TopicID]error] {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.active.Load() {
		err := gerrors.NewErrNotController("DeleteTopics", len(ids))
		x.rejectedCount.Inc()
		x.logger.Warnf("rejected deletion: %v", err)
		return future.Failed[map[TopicID]error](err)
	}

	unique := goset.NewThreadUnsafeSet(ids...)
	results := make(map[TopicID]error, unique.Cardinality())
	for _, id := range unique.ToSlice() {
		topic, ok := x.catalog.Remove(id)
		if !ok {
			results[id] = gerrors.NewErrUnknownTopicID(id)
			continue
		}

		results[id] = nil
		x.deletedCount.Inc()
		x.logger.With("topic", topic.Name, "topicID", id).Debug("topic deleted")
	}

	return future.Completed(results)
}

// Topics returns a snapshot of the catalog sorted by topic name.
func (x *MockController) Topics() []Topic {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.catalog.Topics()
}

// BeginShutdown marks the controller inactive. It is idempotent.
func (x *MockController) BeginShutdown() {
	if x.active.CompareAndSwap(true, false) {
		x.logger.Info("mock controller is no longer active")
	}
}

// SetActive overrides the activity flag.
func (x *MockController) SetActive(active bool) {
	if x.active.Swap(active) != active {
		x.logger.Infof("mock controller active=%t", active)
	}
}

// IsActive reports whether the controller is active.
func (x *MockController) IsActive() bool {
	return x.active.Load()
}

// CurClaimEpoch returns 1 while the controller is active and -1 otherwise.
func (x *MockController) CurClaimEpoch() int64 {
	if x.active.Load() {
		return activeClaimEpoch
	}
	return inactiveClaimEpoch
}

// Close shuts the controller down and unregisters its metrics.
// It can be called more than once.
func (x *MockController) Close() error {
	x.BeginShutdown()

	x.mu.Lock()
	registration := x.registration
	x.registration = nil
	x.mu.Unlock()

	if registration != nil {
		return registration.Unregister()
	}
	return nil
}

// registerMetrics reports the controller instruments when a metric provider is set.
func (x *MockController) registerMetrics() error {
	if x.metricProvider == nil || x.metricProvider.Meter() == nil {
		return nil
	}

	meter := x.metricProvider.Meter()
	metrics, err := metric.NewControllerMetric(meter)
	if err != nil {
		return err
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, observer otelmetric.Observer) error {
		x.mu.Lock()
		topicsCount := int64(x.catalog.Len())
		x.mu.Unlock()

		observeOptions := []otelmetric.ObserveOption{
			otelmetric.WithAttributes(attribute.Bool("controller.active", x.IsActive())),
		}

		observer.ObserveInt64(metrics.TopicsCount(), topicsCount, observeOptions...)
		observer.ObserveInt64(metrics.TopicsDeleted(), x.deletedCount.Load(), observeOptions...)
		observer.ObserveInt64(metrics.RequestsRejected(), x.rejectedCount.Load(), observeOptions...)
		observer.ObserveInt64(metrics.ClaimEpoch(), x.CurClaimEpoch(), observeOptions...)
		return nil
	}, metrics.Instruments()...)
	if err != nil {
		return err
	}

	x.registration = registration
	return nil
}

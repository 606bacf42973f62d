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

package metric

import "go.opentelemetry.io/otel/metric"

// ControllerMetric groups the OpenTelemetry instruments that describe
// the mock controller.
//
// Instruments:
//   - controller.topics.count       (Int64ObservableGauge)
//   - controller.topics.deleted     (Int64ObservableCounter)
//   - controller.requests.rejected  (Int64ObservableCounter)
//   - controller.claim.epoch        (Int64ObservableGauge)
type ControllerMetric struct {
	topicsCount      metric.Int64ObservableGauge
	topicsDeleted    metric.Int64ObservableCounter
	requestsRejected metric.Int64ObservableCounter
	claimEpoch       metric.Int64ObservableGauge
}

// NewControllerMetric creates the controller instruments using the provided Meter.
// It returns an error if any instrument cannot be created.
func NewControllerMetric(meter metric.Meter) (*ControllerMetric, error) {
	var instruments ControllerMetric
	var err error

	if instruments.topicsCount, err = meter.Int64ObservableGauge(
		"controller.topics.count",
		metric.WithDescription("Number of topics in the controller catalog"),
	); err != nil {
		return nil, err
	}

	if instruments.topicsDeleted, err = meter.Int64ObservableCounter(
		"controller.topics.deleted",
		metric.WithDescription("Total number of topics deleted by the controller"),
	); err != nil {
		return nil, err
	}

	if instruments.requestsRejected, err = meter.Int64ObservableCounter(
		"controller.requests.rejected",
		metric.WithDescription("Total number of requests rejected because the controller is not active"),
	); err != nil {
		return nil, err
	}

	if instruments.claimEpoch, err = meter.Int64ObservableGauge(
		"controller.claim.epoch",
		metric.WithDescription("Current claim epoch, negative when the controller is not active"),
	); err != nil {
		return nil, err
	}

	return &instruments, nil
}

// TopicsCount returns the gauge reporting the catalog size.
func (x *ControllerMetric) TopicsCount() metric.Int64ObservableGauge {
	return x.topicsCount
}

// TopicsDeleted returns the counter of successful topic deletions.
func (x *ControllerMetric) TopicsDeleted() metric.Int64ObservableCounter {
	return x.topicsDeleted
}

// RequestsRejected returns the counter of requests failed with a not-controller error.
func (x *ControllerMetric) RequestsRejected() metric.Int64ObservableCounter {
	return x.requestsRejected
}

// ClaimEpoch returns the gauge reporting the claim epoch.
func (x *ControllerMetric) ClaimEpoch() metric.Int64ObservableGauge {
	return x.claimEpoch
}

// Instruments returns every instrument, for use with Meter.RegisterCallback.
func (x *ControllerMetric) Instruments() []metric.Observable {
	return []metric.Observable{
		x.topicsCount,
		x.topicsDeleted,
		x.requestsRejected,
		x.claimEpoch,
	}
}

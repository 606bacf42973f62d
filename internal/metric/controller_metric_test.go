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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestControllerMetric(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	instruments, err := NewControllerMetric(meter)
	require.NoError(t, err)
	require.NotNil(t, instruments)

	require.NotNil(t, instruments.TopicsCount())
	require.NotNil(t, instruments.TopicsDeleted())
	require.NotNil(t, instruments.RequestsRejected())
	require.NotNil(t, instruments.ClaimEpoch())
	require.Len(t, instruments.Instruments(), 4)
}

func TestControllerMetricErrors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	baseMeter := noop.NewMeterProvider().Meter("test")

	testCases := []struct {
		name    string
		failKey string
	}{
		{name: "topics gauge", failKey: "controller.topics.count"},
		{name: "deleted counter", failKey: "controller.topics.deleted"},
		{name: "rejected counter", failKey: "controller.requests.rejected"},
		{name: "epoch gauge", failKey: "controller.claim.epoch"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meter := failingMeter{
				Meter:    baseMeter,
				failures: map[string]error{tt.failKey: errBoom},
			}

			instruments, err := NewControllerMetric(meter)
			require.ErrorIs(t, err, errBoom)
			require.Nil(t, instruments)
		})
	}
}

// failingMeter fails the creation of the instruments named in failures.
type failingMeter struct {
	metric.Meter
	failures map[string]error
}

func (m failingMeter) Int64ObservableGauge(name string, opts ...metric.Int64ObservableGaugeOption) (metric.Int64ObservableGauge, error) {
	if err, ok := m.failures[name]; ok {
		return nil, err
	}
	return m.Meter.Int64ObservableGauge(name, opts...)
}

func (m failingMeter) Int64ObservableCounter(name string, opts ...metric.Int64ObservableCounterOption) (metric.Int64ObservableCounter, error) {
	if err, ok := m.failures[name]; ok {
		return nil, err
	}
	return m.Meter.Int64ObservableCounter(name, opts...)
}

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
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/tochemey/kraftmock/internal/metric"
	"github.com/tochemey/kraftmock/log"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(x *MockController)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*MockController)

// Apply applies the option to the controller.
func (f OptionFunc) Apply(x *MockController) {
	f(x)
}

// WithLogger sets the controller logger. A nil logger is ignored.
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(x *MockController) {
		if logger != nil {
			x.logger = logger
		}
	})
}

// WithMetrics reports the controller instruments on the global OpenTelemetry MeterProvider.
func WithMetrics() Option {
	return OptionFunc(func(x *MockController) {
		x.metricProvider = metric.New()
	})
}

// WithMeterProvider reports the controller instruments on the given MeterProvider.
func WithMeterProvider(provider otelmetric.MeterProvider) Option {
	return OptionFunc(func(x *MockController) {
		x.metricProvider = metric.New(metric.WithMeterProvider(provider))
	})
}

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
	gerrors "github.com/tochemey/kraftmock/errors"
	"github.com/tochemey/kraftmock/future"
)

// notImplemented returns a failed future for an operation the mock does not support.
// It never touches the catalog or the activity flag.
func notImplemented[T any](x *MockController, operation string) future.Future[T] {
	err := gerrors.NewErrNotImplemented(operation)
	x.logger.Warn(err)
	return future.Failed[T](err)
}

// AlterIsr is not implemented.
func (x *MockController) AlterIsr(*AlterIsrRequest) future.Future[*AlterIsrResponse] {
	return notImplemented[*AlterIsrResponse](x, "AlterIsr")
}

// CreateTopics is not implemented.
func (x *MockController) CreateTopics(*CreateTopicsRequest) future.Future[*CreateTopicsResponse] {
	return notImplemented[*CreateTopicsResponse](x, "CreateTopics")
}

// UnregisterBroker is not implemented.
func (x *MockController) UnregisterBroker(int32) future.Future[struct{}] {
	return notImplemented[struct{}](x, "UnregisterBroker")
}

// DescribeConfigs is not implemented.
func (x *MockController) DescribeConfigs(map[ConfigResource][]string) future.Future[map[ConfigResource]ResultOrError[map[string]string]] {
	return notImplemented[map[ConfigResource]ResultOrError[map[string]string]](x, "DescribeConfigs")
}

// ElectLeaders is not implemented.
func (x *MockController) ElectLeaders(*ElectLeadersRequest) future.Future[*ElectLeadersResponse] {
	return notImplemented[*ElectLeadersResponse](x, "ElectLeaders")
}

// FinalizedFeatures is not implemented.
func (x *MockController) FinalizedFeatures() future.Future[*FeatureMapAndEpoch] {
	return notImplemented[*FeatureMapAndEpoch](x, "FinalizedFeatures")
}

// IncrementalAlterConfigs is not implemented.
func (x *MockController) IncrementalAlterConfigs(map[ConfigResource]map[string]AlterConfigOp, bool) future.Future[map[ConfigResource]error] {
	return notImplemented[map[ConfigResource]error](x, "IncrementalAlterConfigs")
}

// LegacyAlterConfigs is not implemented.
func (x *MockController) LegacyAlterConfigs(map[ConfigResource]map[string]string, bool) future.Future[map[ConfigResource]error] {
	return notImplemented[map[ConfigResource]error](x, "LegacyAlterConfigs")
}

// ProcessBrokerHeartbeat is not implemented.
func (x *MockController) ProcessBrokerHeartbeat(*BrokerHeartbeatRequest) future.Future[*BrokerHeartbeatReply] {
	return notImplemented[*BrokerHeartbeatReply](x, "ProcessBrokerHeartbeat")
}

// RegisterBroker is not implemented.
func (x *MockController) RegisterBroker(*BrokerRegistrationRequest) future.Future[*BrokerRegistrationReply] {
	return notImplemented[*BrokerRegistrationReply](x, "RegisterBroker")
}

// WaitForReadyBrokers is not implemented.
func (x *MockController) WaitForReadyBrokers(int) future.Future[struct{}] {
	return notImplemented[struct{}](x, "WaitForReadyBrokers")
}

// AlterClientQuotas is not implemented.
func (x *MockController) AlterClientQuotas([]ClientQuotaAlteration, bool) future.Future[map[ClientQuotaEntity]error] {
	return notImplemented[map[ClientQuotaEntity]error](x, "AlterClientQuotas")
}

// BeginWritingSnapshot is not implemented.
func (x *MockController) BeginWritingSnapshot() future.Future[int64] {
	return notImplemented[int64](x, "BeginWritingSnapshot")
}

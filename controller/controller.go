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

// Package controller defines the cluster metadata controller contract and
// MockController, an in-memory test double that implements it.
//
// MockController keeps a topic catalog (names to ids) and an activity flag.
// FindTopicIDs, FindTopicNames and DeleteTopics are backed by the catalog.
// Every other operation fails with errors.ErrNotImplemented.
//
// Example:
//
//	mock := controller.NewBuilder().
//		AddInitialTopic("alpha", uuid.New()).
//		Build()
//	defer mock.Close()
//
//	result := mock.FindTopicIDs([]string{"alpha"}).AwaitUninterruptible()
package controller

import "github.com/tochemey/kraftmock/future"

// Controller is the contract of the cluster metadata controller.
//
// Every request returns a future.Future. A whole-request failure fails the
// future; per-entry failures are carried inside the result map.
type Controller interface {
	// AlterIsr changes the in-sync replica sets of partitions.
	AlterIsr(request *AlterIsrRequest) future.Future[*AlterIsrResponse]
	// CreateTopics creates a batch of topics.
	CreateTopics(request *CreateTopicsRequest) future.Future[*CreateTopicsResponse]
	// UnregisterBroker removes a broker from the cluster.
	UnregisterBroker(brokerID int32) future.Future[struct{}]
	// FindTopicIDs resolves topic names to topic ids.
	FindTopicIDs(names []string) future.Future[map[string]ResultOrError[TopicID]]
	// FindTopicNames resolves topic ids to topic names.
	FindTopicNames(ids []TopicID) future.Future[map[TopicID]ResultOrError[string]]
	// DeleteTopics deletes topics by id. A nil entry means the topic was deleted.
	DeleteTopics(ids []TopicID) future.Future[map[TopicID]error]
	// DescribeConfigs returns the requested configuration keys of each resource.
	DescribeConfigs(resources map[ConfigResource][]string) future.Future[map[ConfigResource]ResultOrError[map[string]string]]
	// ElectLeaders triggers leader elections.
	ElectLeaders(request *ElectLeadersRequest) future.Future[*ElectLeadersResponse]
	// FinalizedFeatures returns the finalized feature levels.
	FinalizedFeatures() future.Future[*FeatureMapAndEpoch]
	// IncrementalAlterConfigs applies configuration operations.
	IncrementalAlterConfigs(changes map[ConfigResource]map[string]AlterConfigOp, validateOnly bool) future.Future[map[ConfigResource]error]
	// LegacyAlterConfigs replaces the configuration of resources.
	LegacyAlterConfigs(newConfigs map[ConfigResource]map[string]string, validateOnly bool) future.Future[map[ConfigResource]error]
	// ProcessBrokerHeartbeat handles a broker heartbeat.
	ProcessBrokerHeartbeat(request *BrokerHeartbeatRequest) future.Future[*BrokerHeartbeatReply]
	// RegisterBroker registers a broker.
	RegisterBroker(request *BrokerRegistrationRequest) future.Future[*BrokerRegistrationReply]
	// WaitForReadyBrokers completes once minBrokers brokers are ready.
	WaitForReadyBrokers(minBrokers int) future.Future[struct{}]
	// AlterClientQuotas applies client quota alterations.
	AlterClientQuotas(alterations []ClientQuotaAlteration, validateOnly bool) future.Future[map[ClientQuotaEntity]error]
	// BeginWritingSnapshot starts writing a metadata snapshot and returns its offset.
	BeginWritingSnapshot() future.Future[int64]
	// BeginShutdown starts shutting the controller down. It does not block.
	BeginShutdown()
	// CurClaimEpoch returns the current claim epoch, or -1 when this node is not the controller.
	CurClaimEpoch() int64
	// Close shuts the controller down.
	Close() error
}

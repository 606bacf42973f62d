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
	"github.com/google/uuid"

	"github.com/tochemey/kraftmock/internal/catalog"
)

// TopicID is the 128-bit identifier of a topic. Equality is bitwise.
type TopicID = uuid.UUID

// Topic is a (name, id) pair held by the catalog.
type Topic = catalog.Topic

// ResultOrError holds either a result or the error that prevented it.
type ResultOrError[T any] struct {
	result T
	err    error
}

// NewResult returns a successful ResultOrError.
func NewResult[T any](result T) ResultOrError[T] {
	return ResultOrError[T]{result: result}
}

// NewError returns a failed ResultOrError.
func NewError[T any](err error) ResultOrError[T] {
	return ResultOrError[T]{err: err}
}

// Result returns the result. It is the zero value when IsError is true.
func (r ResultOrError[T]) Result() T {
	return r.result
}

// Err returns the error, if any.
func (r ResultOrError[T]) Err() error {
	return r.err
}

// IsError reports whether r holds an error.
func (r ResultOrError[T]) IsError() bool {
	return r.err != nil
}

// TopicPartition identifies a partition of a topic.
type TopicPartition struct {
	Topic     string
	Partition int32
}

// PartitionIsr is the requested in-sync replica set of a partition.
type PartitionIsr struct {
	TopicPartition
	LeaderEpoch       int32
	NewIsr            []int32
	CurrentIsrVersion int32
}

// AlterIsrRequest asks the controller to change in-sync replica sets.
type AlterIsrRequest struct {
	BrokerID    int32
	BrokerEpoch int64
	Partitions  []PartitionIsr
}

// AlterIsrResponse carries the outcome of an AlterIsrRequest per partition.
type AlterIsrResponse struct {
	Partitions map[TopicPartition]error
}

// CreatableTopic describes a topic to create.
type CreatableTopic struct {
	Name              string
	NumPartitions     int32
	ReplicationFactor int16
	Configs           map[string]string
}

// CreateTopicsRequest asks the controller to create topics.
type CreateTopicsRequest struct {
	Topics       []CreatableTopic
	TimeoutMs    int32
	ValidateOnly bool
}

// CreateTopicsResponse carries the id of each created topic or the reason it was not created.
type CreateTopicsResponse struct {
	Topics map[string]ResultOrError[TopicID]
}

// ElectionType selects the leader election strategy.
type ElectionType int8

const (
	PreferredElection ElectionType = iota
	UncleanElection
)

// ElectLeadersRequest asks the controller to elect partition leaders.
type ElectLeadersRequest struct {
	ElectionType ElectionType
	Partitions   []TopicPartition
	TimeoutMs    int32
}

// ElectLeadersResponse carries the election outcome per partition.
type ElectLeadersResponse struct {
	Partitions map[TopicPartition]error
}

// VersionRange is an inclusive feature version range.
type VersionRange struct {
	Min int16
	Max int16
}

// FeatureMapAndEpoch is the set of finalized features and the epoch they were read at.
type FeatureMapAndEpoch struct {
	Features map[string]VersionRange
	Epoch    int64
}

// ConfigResourceType is the kind of a ConfigResource.
type ConfigResourceType int8

const (
	UnknownResource ConfigResourceType = iota
	TopicResource
	BrokerResource
	BrokerLoggerResource
)

// ConfigResource identifies a configurable entity.
type ConfigResource struct {
	Type ConfigResourceType
	Name string
}

// AlterConfigOpType is the kind of an incremental configuration change.
type AlterConfigOpType int8

const (
	SetConfig AlterConfigOpType = iota
	DeleteConfig
	AppendConfig
	SubtractConfig
)

// AlterConfigOp is a single incremental configuration change.
type AlterConfigOp struct {
	OpType AlterConfigOpType
	Value  string
}

// BrokerHeartbeatRequest is the periodic heartbeat of a broker.
type BrokerHeartbeatRequest struct {
	BrokerID              int32
	BrokerEpoch           int64
	CurrentMetadataOffset int64
	WantFence             bool
	WantShutDown          bool
}

// BrokerHeartbeatReply is the controller answer to a heartbeat.
type BrokerHeartbeatReply struct {
	IsCaughtUp           bool
	IsFenced             bool
	InControlledShutdown bool
	ShouldShutDown       bool
}

// Listener is an endpoint advertised by a broker.
type Listener struct {
	Name             string
	Host             string
	Port             uint16
	SecurityProtocol int16
}

// BrokerRegistrationRequest registers a broker with the controller.
type BrokerRegistrationRequest struct {
	BrokerID      int32
	ClusterID     string
	IncarnationID uuid.UUID
	Listeners     []Listener
	Rack          string
}

// BrokerRegistrationReply carries the epoch assigned to a registered broker.
type BrokerRegistrationReply struct {
	Epoch int64
}

// ClientQuotaEntity identifies the client a quota applies to. Empty fields match the default entity.
type ClientQuotaEntity struct {
	User     string
	ClientID string
	IP       string
}

// ClientQuotaOp sets or removes a single quota.
type ClientQuotaOp struct {
	Key    string
	Value  float64
	Remove bool
}

// ClientQuotaAlteration groups the quota operations of one entity.
type ClientQuotaAlteration struct {
	Entity ClientQuotaEntity
	Ops    []ClientQuotaOp
}

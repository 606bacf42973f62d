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

// Package errors defines the errors surfaced by the mock controller.
//
// Per-entry errors (ErrUnknownTopicOrPartition, ErrUnknownTopicID) are carried
// inside result maps. Operation-wide errors (ErrNotController, ErrNotImplemented)
// fail the returned future. Use errors.Is to match them.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotController is returned when a mutating request reaches a controller
	// that is no longer active.
	ErrNotController = errors.New("this is not the correct controller for this cluster")

	// ErrNotImplemented is returned by every controller operation the mock does not support.
	ErrNotImplemented = errors.New("operation is not implemented")

	// ErrUnknownTopicOrPartition is the per-entry error for a topic name that is not in the catalog.
	ErrUnknownTopicOrPartition = errors.New("this server does not host this topic-partition")

	// ErrUnknownTopicID is the per-entry error for a topic id that is not in the catalog.
	ErrUnknownTopicID = errors.New("this server does not host this topic ID")
)

// NewErrNotImplemented formats an ErrNotImplemented with the given operation name.
func NewErrNotImplemented(operation string) error {
	return fmt.Errorf("operation=(%s) %w", operation, ErrNotImplemented)
}

// NewErrUnknownTopicOrPartition formats an ErrUnknownTopicOrPartition with the given topic name.
func NewErrUnknownTopicOrPartition(name string) error {
	return fmt.Errorf("topic=(%s) %w", name, ErrUnknownTopicOrPartition)
}

// NewErrUnknownTopicID formats an ErrUnknownTopicID with the given topic id.
func NewErrUnknownTopicID(id fmt.Stringer) error {
	return fmt.Errorf("topicID=(%s) %w", id.String(), ErrUnknownTopicID)
}

// NewErrNotController formats an ErrNotController with the rejected operation
// and the number of topics it targeted.
func NewErrNotController(operation string, topics int) error {
	return fmt.Errorf("operation=(%s) topics=(%d) %w", operation, topics, ErrNotController)
}

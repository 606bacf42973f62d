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

package errors

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	t.Run("NotImplemented", func(t *testing.T) {
		err := NewErrNotImplemented("CreateTopics")
		require.Error(t, err)
		require.EqualError(t, err, "operation=(CreateTopics) operation is not implemented")
		assert.ErrorIs(t, err, ErrNotImplemented)
	})
	t.Run("UnknownTopicOrPartition", func(t *testing.T) {
		err := NewErrUnknownTopicOrPartition("gamma")
		require.EqualError(t, err, "topic=(gamma) this server does not host this topic-partition")
		assert.ErrorIs(t, err, ErrUnknownTopicOrPartition)
		assert.NotErrorIs(t, err, ErrUnknownTopicID)
	})
	t.Run("UnknownTopicID", func(t *testing.T) {
		id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		err := NewErrUnknownTopicID(id)
		require.EqualError(t, err, "topicID=(6ba7b810-9dad-11d1-80b4-00c04fd430c8) this server does not host this topic ID")
		assert.ErrorIs(t, err, ErrUnknownTopicID)
	})
	t.Run("NotController", func(t *testing.T) {
		err := NewErrNotController("DeleteTopics", 2)
		require.EqualError(t, err, "operation=(DeleteTopics) topics=(2) this is not the correct controller for this cluster")
		assert.ErrorIs(t, err, ErrNotController)
		assert.NotErrorIs(t, err, ErrNotImplemented)
	})
}

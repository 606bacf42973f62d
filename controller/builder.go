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
	"sort"
)

// Builder accumulates the topics a MockController starts with.
type Builder struct {
	initialTopics map[string]Topic
	opts          []Option
}

// NewBuilder creates a Builder. The options are applied to every controller it builds.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{
		initialTopics: make(map[string]Topic),
		opts:          opts,
	}
}

// AddInitialTopic seeds a topic. A later topic with the same name replaces the earlier one.
// When two seeds share an id, Build keeps only the one with the greater name.
func (b *Builder) AddInitialTopic(name string, id TopicID) *Builder {
	b.initialTopics[name] = Topic{Name: name, ID: id}
	return b
}

// Build creates an active MockController whose catalog holds the seeded topics.
//
// Seeds are inserted in name order, so when two seeds share an id the one with
// the greater name is kept. Each call returns an independent controller.
func (b *Builder) Build() *MockController {
	topics := make([]Topic, 0, len(b.initialTopics))
	for _, topic := range b.initialTopics {
		topics = append(topics, topic)
	}

	sort.Slice(topics, func(i, j int) bool {
		return topics[i].Name < topics[j].Name
	})

	return newMockController(topics, b.opts...)
}

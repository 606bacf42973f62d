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

// Package catalog holds the topic catalog of the mock controller: a bijection
// between topic names and topic ids.
//
// A Catalog is not safe for concurrent use. The owner serializes every call
// so that each call is observed atomically.
package catalog

import (
	"sort"

	"github.com/google/uuid"
)

// Topic is an immutable (name, id) pair.
type Topic struct {
	Name string
	ID   uuid.UUID
}

// Catalog keeps the owning map keyed by id and the derived name index in lockstep.
type Catalog struct {
	byID   map[uuid.UUID]Topic
	byName map[string]uuid.UUID
}

// New creates a Catalog seeded with the given topics.
func New(topics ...Topic) *Catalog {
	c := &Catalog{
		byID:   make(map[uuid.UUID]Topic, len(topics)),
		byName: make(map[string]uuid.UUID, len(topics)),
	}
	for _, topic := range topics {
		c.Put(topic)
	}
	return c
}

// Put adds a topic. Any record sharing the topic name or id is evicted first.
func (c *Catalog) Put(topic Topic) {
	if id, ok := c.byName[topic.Name]; ok {
		c.remove(id)
	}
	c.remove(topic.ID)
	c.byID[topic.ID] = topic
	c.byName[topic.Name] = topic.ID
}

// ID returns the id of the named topic.
func (c *Catalog) ID(name string) (uuid.UUID, bool) {
	id, ok := c.byName[name]
	return id, ok
}

// Name returns the name of the topic with the given id.
func (c *Catalog) Name(id uuid.UUID) (string, bool) {
	topic, ok := c.byID[id]
	return topic.Name, ok
}

// Remove deletes the topic with the given id and returns it.
// It returns false when the id is unknown.
func (c *Catalog) Remove(id uuid.UUID) (Topic, bool) {
	return c.remove(id)
}

// Len returns the number of topics.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// Topics returns a copy of the catalog sorted by name.
func (c *Catalog) Topics() []Topic {
	topics := make([]Topic, 0, len(c.byID))
	for _, topic := range c.byID {
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool {
		return topics[i].Name < topics[j].Name
	})
	return topics
}

// Consistent reports whether the id map and the name index describe the same bijection.
func (c *Catalog) Consistent() bool {
	if len(c.byID) != len(c.byName) {
		return false
	}
	for name, id := range c.byName {
		topic, ok := c.byID[id]
		if !ok || topic.Name != name || topic.ID != id {
			return false
		}
	}
	return true
}

func (c *Catalog) remove(id uuid.UUID) (Topic, bool) {
	topic, ok := c.byID[id]
	if !ok {
		return Topic{}, false
	}
	delete(c.byID, id)
	delete(c.byName, topic.Name)
	return topic, true
}

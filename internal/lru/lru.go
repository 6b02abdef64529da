// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lru implements a fixed capacity cache with strict least recently
// used eviction.
package lru

import (
	"container/list"
)

// Cache is a fixed capacity map that evicts the least recently used key when
// full. Cache is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int

	// order holds *entry values, most recently used at the front.
	order *list.List
	items map[K]*list.Element
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New returns a new Cache holding at most capacity keys. A capacity less than
// one is treated as one.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element),
	}
}

// Touch marks key as the most recently used key, inserting it with the zero
// value if it is not present.
func (c *Cache[K, V]) Touch(key K) {
	if e, ok := c.items[key]; ok {
		c.order.MoveToFront(e)
		return
	}
	var zero V
	c.insert(key, zero)
}

// Add sets the value for key and marks it as the most recently used key.
func (c *Cache[K, V]) Add(key K, value V) {
	if e, ok := c.items[key]; ok {
		//nolint:forcetypeassert // only *entry values are stored.
		e.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(e)
		return
	}
	c.insert(key, value)
}

// Get returns the value for key. A hit marks key as the most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(e)
	//nolint:forcetypeassert // only *entry values are stored.
	return e.Value.(*entry[K, V]).value, true
}

// Contains reports whether key is present without changing its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Len returns the number of keys in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the capacity of the cache.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys returns the keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	for e := c.order.Front(); e != nil; e = e.Next() {
		//nolint:forcetypeassert // only *entry values are stored.
		keys = append(keys, e.Value.(*entry[K, V]).key)
	}
	return keys
}

func (c *Cache[K, V]) insert(key K, value V) {
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	for len(c.items) > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		//nolint:forcetypeassert // only *entry values are stored.
		delete(c.items, oldest.Value.(*entry[K, V]).key)
	}
}

// Package store holds an in-process, id-keyed collection cache used to serve
// repeated reads of admin-managed records without going back to the database
// on every request. A collection is filled through Load and dropped wholesale
// by Invalidate after a mutation, so readers only ever see persisted state.
package store

import "sync"

// Collection caches a list of records keyed by id, preserving the order the
// fetch returned them in.
type Collection[T any] struct {
	mu     sync.RWMutex
	key    func(T) string
	items  map[string]T
	order  []string
	loaded bool
}

func NewCollection[T any](key func(T) string) *Collection[T] {
	return &Collection[T]{
		key:   key,
		items: make(map[string]T),
	}
}

// Load returns the cached records, calling fetch first if the collection has
// been invalidated or never filled. A failed fetch leaves the collection
// unloaded so the next call retries.
func (c *Collection[T]) Load(fetch func() ([]T, error)) ([]T, error) {
	c.mu.RLock()
	if c.loaded {
		rows := c.snapshot()
		c.mu.RUnlock()
		return rows, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.snapshot(), nil
	}

	rows, err := fetch()
	if err != nil {
		return nil, err
	}

	c.items = make(map[string]T, len(rows))
	c.order = c.order[:0]
	for _, row := range rows {
		id := c.key(row)
		if _, seen := c.items[id]; !seen {
			c.order = append(c.order, id)
		}
		c.items[id] = row
	}
	c.loaded = true

	return c.snapshot(), nil
}

// Get returns the cached record for id, if the collection holds one.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// All returns the cached records in load order. An unloaded collection
// returns nil.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil
	}
	return c.snapshot()
}

// Put inserts or replaces a single record. It never marks an unloaded
// collection as loaded, so a Put before the first Load does not mask the
// rest of the table.
func (c *Collection[T]) Put(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.key(item)
	if _, seen := c.items[id]; !seen {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

// Remove drops a single record by id.
func (c *Collection[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, seen := c.items[id]; !seen {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Invalidate empties the collection; the next Load fetches fresh rows.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]T)
	c.order = nil
	c.loaded = false
}

// Loaded reports whether the collection currently holds a fetched snapshot.
func (c *Collection[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Collection[T]) snapshot() []T {
	rows := make([]T, 0, len(c.order))
	for _, id := range c.order {
		rows = append(rows, c.items[id])
	}
	return rows
}

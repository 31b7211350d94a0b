/*
Copyright 2026 the Petstore API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fakestore

import (
	"slices"
	"sync"
)

// pendingWrite is a write the store has accepted but not yet made visible.
// A nil value is a delete. remaining counts from the moment the write ahead of
// it was applied.
type pendingWrite[T any] struct {
	value     *T
	remaining int
}

type entry[T any] struct {
	// current is what reads see, nil when absent.
	current *T
	// pending writes in the order they were accepted.
	pending []*pendingWrite[T]
}

// latest is the value the entry converges to once every accepted write is
// applied, nil for a delete.
func (e *entry[T]) latest() *T {
	if n := len(e.pending); n > 0 {
		return e.pending[n-1].value
	}

	return e.current
}

// table holds one resource kind keyed by id. Every write is applied only after
// lag further accesses of its id, until then accesses see the previous state.
// Writes to the same id queue up and are applied in order.
type table[T any] struct {
	lock    sync.Mutex
	lag     int
	nextID  int64
	entries map[int64]*entry[T]
}

func newTable[T any](lag int) *table[T] {
	return &table[T]{
		lag:     lag,
		nextID:  1,
		entries: map[int64]*entry[T]{},
	}
}

func (t *table[T]) setLag(lag int) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.lag = lag
}

// allocateID returns an id no entry uses yet.
func (t *table[T]) allocateID() int64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	for {
		id := t.nextID
		t.nextID++

		if _, ok := t.entries[id]; !ok {
			return id
		}
	}
}

// access counts one access of id and returns what it sees.
// Must be called with the lock held.
func (t *table[T]) access(id int64) (*T, bool) {
	e, ok := t.entries[id]
	if !ok {
		return nil, false
	}

	if len(e.pending) > 0 {
		if head := e.pending[0]; head.remaining > 0 {
			head.remaining--
		} else {
			e.current = head.value
			e.pending = e.pending[1:]
		}
	}

	if e.current == nil {
		if len(e.pending) == 0 {
			delete(t.entries, id)
		}

		return nil, false
	}

	value := *e.current

	return &value, true
}

// write schedules value (nil to delete) for id. Must be called with the lock held.
func (t *table[T]) write(id int64, value *T) {
	e, ok := t.entries[id]
	if !ok {
		e = &entry[T]{}
		t.entries[id] = e
	}

	if t.lag == 0 && len(e.pending) == 0 {
		e.current = value
		return
	}

	e.pending = append(e.pending, &pendingWrite[T]{
		value:     value,
		remaining: t.lag,
	})
}

// create stores a new value for id without looking at what is there.
func (t *table[T]) create(id int64, value T) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.write(id, &value)
}

// get is a read access.
func (t *table[T]) get(id int64) (*T, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.access(id)
}

// update applies mutate to the latest accepted value of id and schedules the
// result behind any writes still pending. It reports false, and writes
// nothing, when id is not visible or a delete of it is pending.
func (t *table[T]) update(id int64, mutate func(*T)) (*T, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if _, ok := t.access(id); !ok {
		return nil, false
	}

	latest := t.entries[id].latest()
	if latest == nil {
		return nil, false
	}

	updated := *latest
	mutate(&updated)

	stored := updated
	t.write(id, &stored)

	return &updated, true
}

// remove schedules a delete of id if it is visible and not already deleted.
func (t *table[T]) remove(id int64) bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	if _, ok := t.access(id); !ok {
		return false
	}

	if t.entries[id].latest() == nil {
		return false
	}

	t.write(id, nil)

	return true
}

// visible lists the values reads would currently see, ordered by id, without
// counting as an access.
func (t *table[T]) visible() []T {
	t.lock.Lock()
	defer t.lock.Unlock()

	ids := make([]int64, 0, len(t.entries))

	for id, e := range t.entries {
		if e.current != nil {
			ids = append(ids, id)
		}
	}

	slices.Sort(ids)

	values := make([]T, len(ids))
	for i, id := range ids {
		values[i] = *t.entries[id].current
	}

	return values
}

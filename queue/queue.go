// Copyright 2020 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package queue

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RequestId is an opaque tag wrapping a string of the form "{prefix}-{n}".
// It wraps the formatted string in an unexported field, rather than being a
// bare string alias, so that code outside this package cannot construct an
// id by string concatenation. The string itself is not parsed or validated.
type RequestId struct {
	value string
}

// String returns the wire form of id, "{prefix}-{n}".
func (id RequestId) String() string { return id.value }

type entry[R any] struct {
	id      RequestId
	payload R
}

// Request is the (RequestId, payload) pair exposed by Requests, Any, and
// All.
type Request[R any] struct {
	ID      RequestId
	Payload R
}

// Queue is an ordered sequence of (RequestId, R) pairs, plus a monotone id
// counter and a string namespace prefix. It is an immutable value: every
// mutating-sounding method returns an updated Queue rather than mutating
// the receiver, matching the rest of this module's pure, value-in
// value-out style.
type Queue[R any] struct {
	requests []entry[R]
	nextID   uint64
	prefix   string
	idGen    func(prefix string, n uint64) RequestId
}

type config struct {
	prefix string
	idGen  func(prefix string, n uint64) RequestId
}

// Option configures a Queue built by New.
type Option func(*config)

// WithPrefix sets the id namespace prefix explicitly. Without it, New picks
// a short random prefix derived from uuid.New, so two queues created
// without an explicit prefix in the same process don't collide.
func WithPrefix(prefix string) Option {
	return func(c *config) { c.prefix = prefix }
}

// WithIDGenerator overrides the "{prefix}-{n}" id format entirely.
func WithIDGenerator(gen func(prefix string, n uint64) RequestId) Option {
	return func(c *config) { c.idGen = gen }
}

func defaultIDGenerator(prefix string, n uint64) RequestId {
	return RequestId{value: fmt.Sprintf("%s-%d", prefix, n)}
}

func randomPrefix() string {
	return "q-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// Empty returns a new, empty Queue namespaced under prefix.
func Empty[R any](prefix string) Queue[R] {
	return New[R](WithPrefix(prefix))
}

// New returns a new, empty Queue configured by opts.
func New[R any](opts ...Option) Queue[R] {
	cfg := config{idGen: defaultIDGenerator}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.prefix == "" {
		cfg.prefix = randomPrefix()
	}
	return Queue[R]{prefix: cfg.prefix, idGen: cfg.idGen}
}

// Add appends r under a freshly minted RequestId and returns the updated
// Queue together with that id. Ids never recycle: nextID only increases.
func (q Queue[R]) Add(r R) (Queue[R], RequestId) {
	id := q.idGen(q.prefix, q.nextID)
	next := make([]entry[R], len(q.requests), len(q.requests)+1)
	copy(next, q.requests)
	next = append(next, entry[R]{id: id, payload: r})
	return Queue[R]{requests: next, nextID: q.nextID + 1, prefix: q.prefix, idGen: q.idGen}, id
}

// Remove drops the entry matching id, preserving the relative order of the
// rest. It is a no-op if id is absent.
func (q Queue[R]) Remove(id RequestId) Queue[R] {
	next := make([]entry[R], 0, len(q.requests))
	for _, e := range q.requests {
		if e.id == id {
			continue
		}
		next = append(next, e)
	}
	return Queue[R]{requests: next, nextID: q.nextID, prefix: q.prefix, idGen: q.idGen}
}

// Insert replaces the payload at id with r, leaving order and length
// unchanged. It is a no-op if id is absent.
func (q Queue[R]) Insert(id RequestId, r R) Queue[R] {
	next := make([]entry[R], len(q.requests))
	copy(next, q.requests)
	for i := range next {
		if next[i].id == id {
			next[i].payload = r
			break
		}
	}
	return Queue[R]{requests: next, nextID: q.nextID, prefix: q.prefix, idGen: q.idGen}
}

// Requests returns the ordered list of (id, payload) pairs currently in the
// queue.
func (q Queue[R]) Requests() []Request[R] {
	out := make([]Request[R], len(q.requests))
	for i, e := range q.requests {
		out[i] = Request[R]{ID: e.id, Payload: e.payload}
	}
	return out
}

// Any reports whether pred holds for at least one entry.
func (q Queue[R]) Any(pred func(Request[R]) bool) bool {
	for _, e := range q.requests {
		if pred(Request[R]{ID: e.id, Payload: e.payload}) {
			return true
		}
	}
	return false
}

// All reports whether pred holds for every entry; vacuously true for an
// empty queue.
func (q Queue[R]) All(pred func(Request[R]) bool) bool {
	for _, e := range q.requests {
		if !pred(Request[R]{ID: e.id, Payload: e.payload}) {
			return false
		}
	}
	return true
}

// Len returns the number of entries currently queued.
func (q Queue[R]) Len() int { return len(q.requests) }

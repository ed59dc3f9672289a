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
	"github.com/arrowloop/loadable/promise"
	"github.com/arrowloop/loadable/state"
)

// RunResult is the value of the Promise returned by Run: the queue's
// next snapshot, and the effects decided on during this pass, in queue
// order modulo group suppression.
type RunResult[R, Effect any] struct {
	Queue   Queue[R]
	Effects []Effect
}

// runAcc threads the fold Run performs over the queue's entries: entries is
// a private working copy of the queue's backing slice, seen is the set of
// group names already sent or stopped this pass, and effects accumulates
// the dispatches decided on so far.
type runAcc[R, Effect any] struct {
	entries []entry[R]
	seen    map[string]bool
	effects []Effect
}

// withPayload returns a copy of entries with idx's payload replaced,
// leaving the original backing array untouched. Run's Promise must stay
// re-evaluable against the same model without later evaluations seeing
// mutations an earlier one made.
func withPayload[R any](entries []entry[R], idx int, r R) []entry[R] {
	next := append([]entry[R](nil), entries...)
	next[idx].payload = r
	return next
}

// withSeen returns a copy of seen with name added, for the same reason.
func withSeen(seen map[string]bool, name string) map[string]bool {
	next := make(map[string]bool, len(seen)+1)
	for k, v := range seen {
		next[k] = v
	}
	next[name] = true
	return next
}

func applyDecision[R, Effect any](a runAcc[R, Effect], idx int, d GroupDecision[R, Effect]) runAcc[R, Effect] {
	switch d.kind {
	case decisionSend:
		a.entries = withPayload(a.entries, idx, d.payload)
		a.effects = append(append([]Effect(nil), a.effects...), d.effect)
	case decisionSendGroup:
		if !a.seen[d.group] {
			a.seen = withSeen(a.seen, d.group)
			a.entries = withPayload(a.entries, idx, d.payload)
			a.effects = append(append([]Effect(nil), a.effects...), d.effect)
		}
	case decisionStopGroup:
		a.seen = withSeen(a.seen, d.group)
	case decisionSkip:
		// entry and group marker both unchanged
	}
	return a
}

// Run is the queue driver. For each (id, r) in q, in order, it evaluates
// handler(id, r), a Promise producing a GroupDecision, threading the
// Model across entries and accumulating group-exclusion state across the
// whole pass. The returned Promise's value is the resulting RunResult; its
// own Model and effect-list channel carries whatever the handler Promises
// themselves emitted, independently of the effects named by the decisions
// they returned.
//
// A handler promise that resolves to anything other than a usable
// GroupDecision (Empty, Pending(None), or Error) is treated as an implicit
// Skip for that entry: Run never fails, and never drops an entry.
//
// The returned Promise's State is Done(RunResult) unless some handler
// Promise resolved to Pending (with or without a decision); in that case it
// is Pending(Some(RunResult)), carrying the same RunResult.
func Run[Model, Effect, E, R any](
	handler func(RequestId, R) promise.Promise[Model, Effect, E, GroupDecision[R, Effect]],
	q Queue[R],
) promise.Promise[Model, Effect, promise.Never, RunResult[R, Effect]] {
	initial := runAcc[R, Effect]{
		entries: append([]entry[R](nil), q.requests...),
		seen:    map[string]bool{},
	}

	step := promise.FromValue[Model, Effect, promise.Never, runAcc[R, Effect]](initial)

	for i := range q.requests {
		idx := i
		step = promise.AndThen(func(a runAcc[R, Effect]) promise.Promise[Model, Effect, promise.Never, runAcc[R, Effect]] {
			e := a.entries[idx]
			hp := handler(e.id, e.payload)
			return promise.Map(func(inner state.State[E, GroupDecision[R, Effect]]) runAcc[R, Effect] {
				d, ok := inner.ToMaybe().Get()
				if !ok {
					return a
				}
				return applyDecision(a, idx, d)
			}, promise.WithState(hp))
		}, step)
	}

	return promise.Map(func(a runAcc[R, Effect]) RunResult[R, Effect] {
		return RunResult[R, Effect]{
			Queue: Queue[R]{
				requests: a.entries,
				nextID:   q.nextID,
				prefix:   q.prefix,
				idGen:    q.idGen,
			},
			Effects: a.effects,
		}
	}, step)
}

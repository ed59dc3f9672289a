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

import "github.com/arrowloop/loadable/state"

// decisionKind discriminates the four GroupDecision variants.
type decisionKind uint8

const (
	decisionSkip decisionKind = iota
	decisionSend
	decisionSendGroup
	decisionStopGroup
)

// GroupDecision is what a Run handler returns for a single queue entry: an
// instruction for whether to dispatch an effect and replace the entry's
// payload, possibly subject to a named group's exclusion.
type GroupDecision[R, Effect any] struct {
	kind    decisionKind
	group   string
	payload R
	effect  Effect
}

// Send unconditionally replaces the entry's payload with r and emits eff.
func Send[R, Effect any](r R, eff Effect) GroupDecision[R, Effect] {
	return GroupDecision[R, Effect]{kind: decisionSend, payload: r, effect: eff}
}

// SendGroup emits eff and replaces the entry's payload with r, unless name
// has already been marked sent earlier in this Run pass, in which case the
// entry is left unchanged and nothing is emitted.
func SendGroup[R, Effect any](name string, r R, eff Effect) GroupDecision[R, Effect] {
	return GroupDecision[R, Effect]{kind: decisionSendGroup, group: name, payload: r, effect: eff}
}

// StopGroup marks name as sent for this pass without emitting anything or
// changing the entry, blocking later entries in the same group.
func StopGroup[R, Effect any](name string) GroupDecision[R, Effect] {
	return GroupDecision[R, Effect]{kind: decisionStopGroup, group: name}
}

// Skip leaves the entry unchanged and emits nothing.
func Skip[R, Effect any]() GroupDecision[R, Effect] {
	return GroupDecision[R, Effect]{kind: decisionSkip}
}

// SendWhenEmpty adapts a state.State-of-response into a GroupDecision with
// no group: Empty sends r/eff; every other variant (Pending, Stale, Done,
// Error) skips.
func SendWhenEmpty[E, A, R, Effect any](s state.State[E, A], r R, eff Effect) GroupDecision[R, Effect] {
	if s.IsEmpty() {
		return Send[R, Effect](r, eff)
	}
	return Skip[R, Effect]()
}

// WithGroupWhenEmpty adapts a state.State-of-response into a GroupDecision
// under the named group: Empty sends; Pending stops the group (an entry is
// already in flight); Stale, Done, and Error skip without touching the
// group's sent marker.
func WithGroupWhenEmpty[E, A, R, Effect any](name string, s state.State[E, A], r R, eff Effect) GroupDecision[R, Effect] {
	if s.IsEmpty() {
		return SendGroup(name, r, eff)
	}
	if s.IsPending() {
		return StopGroup[R, Effect](name)
	}
	return Skip[R, Effect]()
}

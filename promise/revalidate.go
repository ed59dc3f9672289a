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

package promise

import "github.com/arrowloop/loadable/state"

// FromEffectWhenEmpty is the central revalidation protocol for a
// cache-backed fetch. get reads a state.State slot out of the model; set
// writes a new state.State back into it; getEffect builds the Effect to
// dispatch (typically an HTTP request keyed by some input already present
// in the model) once firing has been decided.
//
// It inspects the slot and:
//
//	Empty    -> fire, slot becomes Pending(None), emits getEffect(model')
//	Stale a  -> fire, slot becomes Pending(Some a), emits getEffect(model')
//	Pending  -> wait, slot unchanged, no effect
//	Done a   -> serve, slot unchanged, no effect
//	Error e  -> surface, slot unchanged, no effect
//
// The at-most-one-in-flight invariant falls out of this directly: once the
// slot is Pending, every further evaluation against the same model takes
// the "wait" branch and emits nothing. The only way out of Pending is for
// the host to write a terminal state.State into the slot, via set, before
// the next evaluation.
func FromEffectWhenEmpty[Model, Effect, E, A any](
	get func(Model) state.State[E, A],
	set func(state.State[E, A], Model) Model,
	getEffect func(Model) Effect,
) Promise[Model, Effect, E, A] {
	return newPromise(func(m Model) (state.State[E, A], Model, []Effect) {
		slot := get(m)

		if slot.IsEmpty() {
			trace(traceRevalidateFire, "empty")
			next := state.Pending[E, A](state.None[A]())
			m2 := set(next, m)
			return next, m2, []Effect{getEffect(m2)}
		}

		if slot.IsStale() {
			trace(traceRevalidateFire, "stale")
			v, _ := slot.ToMaybe().Get()
			next := state.Pending[E, A](state.Some(v))
			m2 := set(next, m)
			return next, m2, []Effect{getEffect(m2)}
		}

		if slot.IsPending() {
			trace(traceRevalidateWait, "pending")
		} else if slot.IsError() {
			trace(traceRevalidateSurface, "error")
		} else {
			trace(traceRevalidateServe, "done")
		}

		// Pending, Done, and Error all serve the current slot as-is.
		return slot, m, nil
	})
}

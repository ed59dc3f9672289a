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

// Map lifts f under every variant's payload of p's eventual State, leaving
// the model and the emitted effects untouched.
func Map[Model, Effect, E, A, B any](f func(A) B, p Promise[Model, Effect, E, A]) Promise[Model, Effect, E, B] {
	return newPromise(func(m Model) (state.State[E, B], Model, []Effect) {
		s, m2, effs := runEval(p, m)
		return state.Map(f, s), m2, effs
	})
}

// MapEffect applies g to every element of p's emitted effect list.
func MapEffect[Model, Effect1, Effect2, E, A any](
	g func(Effect1) Effect2,
	p Promise[Model, Effect1, E, A],
) Promise[Model, Effect2, E, A] {
	return newPromise(func(m Model) (state.State[E, A], Model, []Effect2) {
		s, m2, effs := runEval(p, m)
		out := make([]Effect2, len(effs))
		for i, e := range effs {
			out[i] = g(e)
		}
		return s, m2, out
	})
}

// MapError applies g to p's Error payload only; every other variant passes
// through unchanged.
func MapError[Model, Effect, E1, E2, A any](
	g func(E1) E2,
	p Promise[Model, Effect, E1, A],
) Promise[Model, Effect, E2, A] {
	return newPromise(func(m Model) (state.State[E2, A], Model, []Effect) {
		s, m2, effs := runEval(p, m)
		if e, ok := s.GetError(); ok {
			return state.Error[E2, A](g(e)), m2, effs
		}
		return state.Recast[E1, E2, A](s), m2, effs
	})
}

// WithState reifies p's inner State as the Done-value of a new Promise,
// letting the caller inspect the result without blocking the chain on it.
// The outer Promise's own State is Done, unless the inner State was
// Pending, in which case the outer State is Pending(Some inner), so a
// further WhenPending/andThen still sees the "still loading" signal.
func WithState[Model, Effect, E, A any](p Promise[Model, Effect, E, A]) Promise[Model, Effect, Never, state.State[E, A]] {
	return newPromise(func(m Model) (state.State[Never, state.State[E, A]], Model, []Effect) {
		inner, m2, effs := runEval(p, m)
		if inner.IsPending() {
			return state.Pending[Never, state.State[E, A]](state.Some(inner)), m2, effs
		}
		return state.Done[Never, state.State[E, A]](inner), m2, effs
	})
}

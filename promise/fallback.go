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

// WhenPending replaces a Pending(None) result with Pending(Some(a)); every
// other State, including an already-carrying Pending, is unchanged.
func WhenPending[Model, Effect, E, A any](a A, p Promise[Model, Effect, E, A]) Promise[Model, Effect, E, A] {
	return newPromise(func(m Model) (state.State[E, A], Model, []Effect) {
		s, m2, effs := runEval(p, m)
		if s.IsPending() {
			if _, has := s.ToMaybe().Get(); !has {
				return state.Pending[E, A](state.Some(a)), m2, effs
			}
		}
		return s, m2, effs
	})
}

// WhenError replaces an Error(e) result with Done(f(e)); every other State
// is unchanged. It widens the error type to Never, since, after this call,
// no Error can remain in this Promise's chain.
func WhenError[Model, Effect, E, A any](f func(E) A, p Promise[Model, Effect, E, A]) Promise[Model, Effect, Never, A] {
	return newPromise(func(m Model) (state.State[Never, A], Model, []Effect) {
		s, m2, effs := runEval(p, m)
		if e, ok := s.GetError(); ok {
			return state.Done[Never, A](f(e)), m2, effs
		}
		return state.Recast[E, Never, A](s), m2, effs
	})
}

// WithMaybe collapses a Promise of a state.Maybe into a plain Promise:
// Some(a) becomes Done(a), None becomes Empty. Error, Pending(None), and
// Empty on the source Promise pass straight through, via AndThen's
// short-circuiting; a Pending carrying a Maybe is collapsed the same way and
// then kept Pending, as AndThen does for any Pending(Some).
func WithMaybe[Model, Effect, E, A any](p Promise[Model, Effect, E, state.Maybe[A]]) Promise[Model, Effect, E, A] {
	return AndThen(func(mb state.Maybe[A]) Promise[Model, Effect, E, A] {
		return FromState[Model, Effect](state.FromMaybe[E](mb))
	}, p)
}

// WithMaybeWhenError is WithMaybe, except an absent value becomes
// Error(pred()) instead of Empty.
func WithMaybeWhenError[Model, Effect, E, A any](
	pred func() E,
	p Promise[Model, Effect, E, state.Maybe[A]],
) Promise[Model, Effect, E, A] {
	return AndThen(func(mb state.Maybe[A]) Promise[Model, Effect, E, A] {
		if v, ok := mb.Get(); ok {
			return FromValue[Model, Effect, E, A](v)
		}
		return FromError[Model, Effect, E, A](pred())
	}, p)
}

// WithResult collapses a Promise of a state.Result into a plain Promise:
// Ok(a) becomes Done(a), Err(e) becomes Error(e).
func WithResult[Model, Effect, E, A any](p Promise[Model, Effect, E, state.Result[E, A]]) Promise[Model, Effect, E, A] {
	return AndThen(func(r state.Result[E, A]) Promise[Model, Effect, E, A] {
		return FromState[Model, Effect](state.FromResult(r))
	}, p)
}

// Recover swaps an Error(e) result for a freshly evaluated handler(e)
// Promise, run against p's updated model, with its effects appended after
// p's. Every other State passes through unchanged.
func Recover[Model, Effect, E, A any](
	handler func(E) Promise[Model, Effect, E, A],
	p Promise[Model, Effect, E, A],
) Promise[Model, Effect, E, A] {
	return newPromise(func(m Model) (state.State[E, A], Model, []Effect) {
		s, m2, effs := runEval(p, m)
		if e, ok := s.GetError(); ok {
			rs, m3, reffs := runEval(handler(e), m2)
			return rs, m3, concatEffects(effs, reffs)
		}
		return s, m2, effs
	})
}

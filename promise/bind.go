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

// AndThen is monadic bind. If p resolves to Pending(Some a), Stale(a), or
// Done(a), f(a) is evaluated against p's updated model and its effects are
// appended after p's. If p was Pending(Some a), the continuation's State is
// forced into Pending (via state.SetPending) so the "still loading" signal
// survives the bind. Pending(None) and Empty short-circuit to themselves,
// carrying only p's effects. Error short-circuits to Error, likewise.
func AndThen[Model, Effect, E, A, B any](
	f func(A) Promise[Model, Effect, E, B],
	p Promise[Model, Effect, E, A],
) Promise[Model, Effect, E, B] {
	return newPromise(func(m Model) (state.State[E, B], Model, []Effect) {
		s, m2, effs := runEval(p, m)

		if e, ok := s.GetError(); ok {
			return state.Error[E, B](e), m2, effs
		}

		if s.IsEmpty() {
			return state.Empty[E, B](), m2, effs
		}

		if s.IsPending() {
			v, hasPrev := s.ToMaybe().Get()
			if !hasPrev {
				return state.Pending[E, B](state.None[B]()), m2, effs
			}
			cs, m3, ceffs := runEval(f(v), m2)
			return state.SetPending(cs), m3, concatEffects(effs, ceffs)
		}

		// Stale or Done
		v, _ := s.ToMaybe().Get()
		cs, m3, ceffs := runEval(f(v), m2)
		return cs, m3, concatEffects(effs, ceffs)
	})
}

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

// AndMap is the applicative product. pf is evaluated first, then pa
// against pf's updated model; model threading is strict left-to-right, so
// pf's update is visible to pa. The resulting States combine per
// state.AndMap's table, and the effect lists concatenate, pf's before pa's.
func AndMap[Model, Effect, E, A, B any](
	pf Promise[Model, Effect, E, func(A) B],
	pa Promise[Model, Effect, E, A],
) Promise[Model, Effect, E, B] {
	return newPromise(func(m Model) (state.State[E, B], Model, []Effect) {
		sf, m2, effsF := runEval(pf, m)
		sa, m3, effsA := runEval(pa, m2)
		return state.AndMap(sf, sa), m3, concatEffects(effsF, effsA)
	})
}

// Map2 combines two Promises of the same Model/Effect/E with a plain
// 2-argument function, via FromValue(f) |> AndMap(pa) |> AndMap(pb).
func Map2[Model, Effect, E, A, B, C any](
	f func(A, B) C,
	pa Promise[Model, Effect, E, A],
	pb Promise[Model, Effect, E, B],
) Promise[Model, Effect, E, C] {
	curried := FromValue[Model, Effect, E, func(A) func(B) C](func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	})
	step := AndMap[Model, Effect, E, A, func(B) C](curried, pa)
	return AndMap[Model, Effect, E, B, C](step, pb)
}

// Map3 is Map2 generalized to three Promises.
func Map3[Model, Effect, E, A, B, C, D any](
	f func(A, B, C) D,
	pa Promise[Model, Effect, E, A],
	pb Promise[Model, Effect, E, B],
	pc Promise[Model, Effect, E, C],
) Promise[Model, Effect, E, D] {
	curried := Map2(func(a A, b B) func(C) D {
		return func(c C) D { return f(a, b, c) }
	}, pa, pb)
	return AndMap[Model, Effect, E, C, D](curried, pc)
}

// Map4 is Map2 generalized to four Promises.
func Map4[Model, Effect, E, A, B, C, D, F any](
	f func(A, B, C, D) F,
	pa Promise[Model, Effect, E, A],
	pb Promise[Model, Effect, E, B],
	pc Promise[Model, Effect, E, C],
	pd Promise[Model, Effect, E, D],
) Promise[Model, Effect, E, F] {
	curried := Map3(func(a A, b B, c C) func(D) F {
		return func(d D) F { return f(a, b, c, d) }
	}, pa, pb, pc)
	return AndMap[Model, Effect, E, D, F](curried, pd)
}

// Combine folds a list of same-typed Promises into a Promise of a slice, in
// order, via repeated Map2.
func Combine[Model, Effect, E, A any](ps ...Promise[Model, Effect, E, A]) Promise[Model, Effect, E, []A] {
	acc := FromValue[Model, Effect, E, []A](nil)
	for _, p := range ps {
		acc = Map2(func(xs []A, a A) []A {
			out := make([]A, 0, len(xs)+1)
			out = append(out, xs...)
			out = append(out, a)
			return out
		}, acc, p)
	}
	return acc
}

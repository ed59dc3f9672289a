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

// FromValue returns a Promise that always resolves to state.Done(a),
// without touching the model or emitting any effects.
func FromValue[Model, Effect, E, A any](a A) Promise[Model, Effect, E, A] {
	return newPromise(func(m Model) (state.State[E, A], Model, []Effect) {
		return state.Done[E, A](a), m, nil
	})
}

// FromError is FromValue's counterpart for a constant failure.
func FromError[Model, Effect, E, A any](e E) Promise[Model, Effect, E, A] {
	return newPromise(func(m Model) (state.State[E, A], Model, []Effect) {
		return state.Error[E, A](e), m, nil
	})
}

// FromResult lifts a constant state.Result into a Promise.
func FromResult[Model, Effect, E, A any](r state.Result[E, A]) Promise[Model, Effect, E, A] {
	return FromState[Model, Effect](state.FromResult(r))
}

// FromState lifts a constant state.State into a Promise.
func FromState[Model, Effect, E, A any](s state.State[E, A]) Promise[Model, Effect, E, A] {
	return newPromise(func(m Model) (state.State[E, A], Model, []Effect) {
		return s, m, nil
	})
}

// FromModel is the classic reader: f is applied to the model to produce a
// Promise, which is then evaluated against that same model.
func FromModel[Model, Effect, E, A any](f func(Model) Promise[Model, Effect, E, A]) Promise[Model, Effect, E, A] {
	return newPromise(func(m Model) (state.State[E, A], Model, []Effect) {
		return runEval(f(m), m)
	})
}

// FromUpdate is the cache-insertion primitive: f inspects the model and
// returns an updated model plus the Promise to evaluate against it. Use
// this to write a fresh value, or a transition like state.SetPending, into
// a slot before reading back through it.
func FromUpdate[Model, Effect, E, A any](f func(Model) (Model, Promise[Model, Effect, E, A])) Promise[Model, Effect, E, A] {
	return newPromise(func(m Model) (state.State[E, A], Model, []Effect) {
		m2, p := f(m)
		return runEval(p, m2)
	})
}

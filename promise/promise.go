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

// Promise describes an asynchronous, model-cached, effectful computation: a
// pure function from a Model to a state.State[E, A], a (possibly updated)
// Model, and a list of Effect values to dispatch.
//
// The zero value evaluates to state.Empty with the Model and effect list
// unchanged; it is a harmless placeholder, not a blocking value, since
// there is no goroutine behind it to block on.
type Promise[Model, Effect, E, A any] struct {
	eval func(Model) (state.State[E, A], Model, []Effect)
}

// newPromise wraps eval as a Promise. It is the one place, in this package,
// that touches the private eval field; every combinator is built by calling
// this with a closure over other Promises' eval funcs.
func newPromise[Model, Effect, E, A any](
	eval func(Model) (state.State[E, A], Model, []Effect),
) Promise[Model, Effect, E, A] {
	return Promise[Model, Effect, E, A]{eval: eval}
}

// runEval evaluates p against m, tolerating the zero Promise.
func runEval[Model, Effect, E, A any](p Promise[Model, Effect, E, A], m Model) (state.State[E, A], Model, []Effect) {
	if p.eval == nil {
		return state.Empty[E, A](), m, nil
	}
	return p.eval(m)
}

// Unit is the value type of a sink Promise, the only shape Run accepts.
type Unit struct{}

// Never is the uninhabited error type of a sink Promise. Nothing in this
// package ever constructs a value that carries a Never payload; a
// state.State[Never, Unit] that reports IsError() would indicate a bug in a
// combinator, not a reachable outcome.
type Never struct{}

// Run evaluates a sinked Promise p against model, and returns the resulting
// Model and the list of Effect values to dispatch. It is, along with
// RunWith, the only intended entry point from a host's update function.
func Run[Model, Effect any](p Promise[Model, Effect, Never, Unit], model Model) (Model, []Effect) {
	trace(traceRun, "")
	_, m, effs := runEval(p, model)
	return m, effs
}

// RunWith is Run with its arguments flipped, for pipeline-style call sites
// that thread the model through a chain of top-level update steps.
func RunWith[Model, Effect any](model Model, p Promise[Model, Effect, Never, Unit]) (Model, []Effect) {
	return Run(p, model)
}

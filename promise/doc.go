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

// Package promise provides a composable, applicative-monadic description
// of an asynchronous, model-cached, effectful computation, for use inside a
// pure, message-driven update loop.
//
// A Promise[Model, Effect, E, A] is conceptually a pure function from a
// Model to a triple: a state.State[E, A], the (possibly updated) Model, and
// a list of Effect values to dispatch. It has no observable identity of its
// own; two Promise values are equivalent if they produce the same triple on
// every Model. It is typically rebuilt from scratch on every tick, rather
// than kept around as a live object.
//
// General Notes:-
//
// * A Promise never performs I/O, and never raises. All failure is in-band,
// through the E of a state.Error. Effect dispatch, and writing the response
// back into the Model, are entirely the host's responsibility.
//
// * Evaluating a Promise against a Model is synchronous, deterministic, and
// single-threaded; there is no concurrency, suspension, or cancellation
// inside this package. "Asynchrony" is expressed purely as Pending states
// plus emitted effects; see state.State.
//
// * Effects accumulate by concatenation, in evaluation order. The order is
// part of the tested contract (see the *_test.go files in this package),
// even though most hosts will treat the returned list as an unordered bag
// for dispatch purposes.
//
// Host↔core contract:-
//
// * The host owns a Model with slots shaped state.State[E, A], or
// map[K]state.State[E, A] for keyed resources, for every cacheable value.
//
// * The host's update function constructs the Promise appropriate to the
// incoming message, calls Run (or RunWith) on it, installs the returned
// Model, and dispatches the returned Effect list.
//
// * On receiving a response to a dispatched Effect, the host must write the
// corresponding terminal state.State (typically via state.FromResult) into
// the matching slot before the governing Promise is evaluated again. The
// core never sees or parses a transport payload.
package promise

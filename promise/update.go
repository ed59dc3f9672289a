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

// Update evaluates p, then calls writer with p's State and updated model to
// obtain a further model/effect pair, which is appended after p's own.
// The result is always a sinked Promise: Done(Unit{}), with an uninhabited
// error type, since Update is meant to be the last step before Run.
func Update[Model, Effect, E, A any](
	writer func(state.State[E, A], Model) (Model, []Effect),
	p Promise[Model, Effect, E, A],
) Promise[Model, Effect, Never, Unit] {
	return newPromise(func(m Model) (state.State[Never, Unit], Model, []Effect) {
		s, m2, effs := runEval(p, m)
		m3, weffs := writer(s, m2)
		return state.Done[Never, Unit](Unit{}), m3, concatEffects(effs, weffs)
	})
}

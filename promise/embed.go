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

// Lens focuses an Outer model on an Inner piece of it: Get extracts the
// Inner value, and Set writes a (possibly new) Inner value back into a
// (possibly new) Outer value. It is the only mechanism for composing
// Promises across a larger model, via EmbedModel.
type Lens[Outer, Inner any] struct {
	Get func(Outer) Inner
	Set func(Inner, Outer) Outer
}

// EmbedModel evaluates p against lens.Get(outer), then writes the updated
// inner model back into outer via lens.Set. The resulting State and
// effects are passed through verbatim.
func EmbedModel[Outer, Inner, Effect, E, A any](
	lens Lens[Outer, Inner],
	p Promise[Inner, Effect, E, A],
) Promise[Outer, Effect, E, A] {
	return newPromise(func(outer Outer) (state.State[E, A], Outer, []Effect) {
		inner := lens.Get(outer)
		s, inner2, effs := runEval(p, inner)
		return s, lens.Set(inner2, outer), effs
	})
}

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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrowloop/loadable/state"
)

// model is the shared fixture model for promise tests: a single cached slot
// plus a plain counter that tests read and bump to observe how the model is
// threaded through combinators.
type model struct {
	slot  state.State[string, int]
	calls int
}

type effect struct {
	kind string
}

func getSlot(m model) state.State[string, int]          { return m.slot }
func setSlot(s state.State[string, int], m model) model { m.slot = s; return m }

func TestRunOnZeroPromise(t *testing.T) {
	var p Promise[model, effect, Never, Unit]
	m, effs := Run(p, model{})
	assert.Equal(t, model{}, m)
	assert.Nil(t, effs)
}

func TestRunWithIsRunFlipped(t *testing.T) {
	p := FromValue[model, effect, Never, Unit](Unit{})
	m1, e1 := Run(p, model{calls: 2})
	m2, e2 := RunWith(model{calls: 2}, p)
	assert.Equal(t, m1, m2)
	assert.Equal(t, e1, e2)
}

func TestMapFunctorIdentity(t *testing.T) {
	p := FromValue[model, effect, string, int](3)
	mapped := Map(func(i int) int { return i }, p)
	s1, m1, _ := runEval(p, model{})
	s2, m2, _ := runEval(mapped, model{})
	assert.Equal(t, s1, s2)
	assert.Equal(t, m1, m2)
}

func TestMapFunctorComposition(t *testing.T) {
	p := FromValue[model, effect, string, int](3)
	f := func(i int) int { return i + 1 }
	g := func(i int) string { return "n" }

	lhs := Map(func(i int) string { return g(f(i)) }, p)
	rhs := Map(g, Map(f, p))

	s1, _, _ := runEval(lhs, model{})
	s2, _, _ := runEval(rhs, model{})
	assert.Equal(t, s1, s2)
}

func TestMapEffectAppliesToEveryEffect(t *testing.T) {
	p := newPromise(func(m model) (state.State[string, int], model, []effect) {
		return state.Done[string, int](1), m, []effect{{kind: "a"}, {kind: "b"}}
	})
	mapped := MapEffect(func(e effect) effect { return effect{kind: e.kind + "!"} }, p)
	_, _, effs := runEval(mapped, model{})
	assert.Equal(t, []effect{{kind: "a!"}, {kind: "b!"}}, effs)
}

func TestMapErrorAppliesOnlyToError(t *testing.T) {
	g := func(e string) string { return e + "-wrapped" }

	errP := FromError[model, effect, string, int]("boom")
	mappedErr := MapError(g, errP)
	s, _, _ := runEval(mappedErr, model{})
	e, ok := s.GetError()
	assert.True(t, ok)
	assert.Equal(t, "boom-wrapped", e)

	okP := FromValue[model, effect, string, int](3)
	mappedOk := MapError(g, okP)
	s2, _, _ := runEval(mappedOk, model{})
	assert.True(t, s2.IsDone())
}

func TestWithStateReifiesInnerState(t *testing.T) {
	p := FromState[model, effect](state.Stale[string, int](7))
	reified := WithState(p)
	s, _, _ := runEval(reified, model{})
	assert.True(t, s.IsDone())
	v, _ := s.ToMaybe().Get()
	assert.True(t, v.IsStale())
}

func TestWithStatePendingStaysPending(t *testing.T) {
	p := FromState[model, effect](state.Pending[string, int](state.Some(2)))
	reified := WithState(p)
	s, _, _ := runEval(reified, model{})
	assert.True(t, s.IsPending())
	inner, ok := s.ToMaybe().Get()
	assert.True(t, ok)
	assert.True(t, inner.IsPending())
}

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

func TestAndMapThreadsModelLeftToRight(t *testing.T) {
	pf := newPromise(func(m model) (state.State[string, func(int) int], model, []effect) {
		m.calls++
		return state.Done[string, func(int) int](func(i int) int { return i + 1 }), m, nil
	})
	pa := newPromise(func(m model) (state.State[string, int], model, []effect) {
		// pa must see pf's update to m.calls.
		return state.Done[string, int](m.calls * 10), m, nil
	})

	combined := AndMap(pf, pa)
	s, m2, _ := runEval(combined, model{})
	assert.True(t, s.IsDone())
	v, _ := s.ToMaybe().Get()
	assert.Equal(t, 11, v) // (1 * 10) + 1
	assert.Equal(t, 1, m2.calls)
}

func TestAndMapFromValueLaw(t *testing.T) {
	f := func(i int) int { return i + 1 }
	pf := FromValue[model, effect, string, func(int) int](f)
	pa := FromValue[model, effect, string, int](41)

	combined := AndMap(pf, pa)
	s, _, _ := runEval(combined, model{})
	assert.True(t, s.IsDone())
	v, _ := s.ToMaybe().Get()
	assert.Equal(t, 42, v)
}

func TestAndMapErrorIsLeftBiased(t *testing.T) {
	pf := FromError[model, effect, string, func(int) int]("left")
	pa := FromError[model, effect, string, int]("right")

	combined := AndMap(pf, pa)
	s, _, _ := runEval(combined, model{})
	e, ok := s.GetError()
	assert.True(t, ok)
	assert.Equal(t, "left", e)
}

func TestAndMapConcatenatesEffectsPfThenPa(t *testing.T) {
	pf := newPromise(func(m model) (state.State[string, func(int) int], model, []effect) {
		return state.Done[string, func(int) int](func(i int) int { return i }), m, []effect{{kind: "pf"}}
	})
	pa := newPromise(func(m model) (state.State[string, int], model, []effect) {
		return state.Done[string, int](1), m, []effect{{kind: "pa"}}
	})

	combined := AndMap(pf, pa)
	_, _, effs := runEval(combined, model{})
	assert.Equal(t, []effect{{kind: "pf"}, {kind: "pa"}}, effs)
}

func TestMap2(t *testing.T) {
	pa := FromValue[model, effect, string, int](2)
	pb := FromValue[model, effect, string, int](3)

	combined := Map2(func(a, b int) int { return a * b }, pa, pb)
	s, _, _ := runEval(combined, model{})
	v, _ := s.ToMaybe().Get()
	assert.Equal(t, 6, v)
}

func TestMap3(t *testing.T) {
	pa := FromValue[model, effect, string, int](2)
	pb := FromValue[model, effect, string, int](3)
	pc := FromValue[model, effect, string, int](4)

	combined := Map3(func(a, b, c int) int { return a + b + c }, pa, pb, pc)
	s, _, _ := runEval(combined, model{})
	v, _ := s.ToMaybe().Get()
	assert.Equal(t, 9, v)
}

func TestMap4(t *testing.T) {
	pa := FromValue[model, effect, string, int](1)
	pb := FromValue[model, effect, string, int](2)
	pc := FromValue[model, effect, string, int](3)
	pd := FromValue[model, effect, string, int](4)

	combined := Map4(func(a, b, c, d int) int { return a + b + c + d }, pa, pb, pc, pd)
	s, _, _ := runEval(combined, model{})
	v, _ := s.ToMaybe().Get()
	assert.Equal(t, 10, v)
}

func TestCombine(t *testing.T) {
	ps := []Promise[model, effect, string, int]{
		FromValue[model, effect, string, int](1),
		FromValue[model, effect, string, int](2),
		FromValue[model, effect, string, int](3),
	}
	combined := Combine(ps...)
	s, _, _ := runEval(combined, model{})
	v, _ := s.ToMaybe().Get()
	assert.Equal(t, []int{1, 2, 3}, v)
}

func TestCombineShortCircuitsOnError(t *testing.T) {
	ps := []Promise[model, effect, string, int]{
		FromValue[model, effect, string, int](1),
		FromError[model, effect, string, int]("boom"),
		FromValue[model, effect, string, int](3),
	}
	combined := Combine(ps...)
	s, _, _ := runEval(combined, model{})
	e, ok := s.GetError()
	assert.True(t, ok)
	assert.Equal(t, "boom", e)
}

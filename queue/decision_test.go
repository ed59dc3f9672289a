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

package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrowloop/loadable/state"
)

func TestSendWhenEmptyTable(t *testing.T) {
	cases := []struct {
		name string
		s    state.State[string, int]
		kind decisionKind
	}{
		{"empty sends", state.Empty[string, int](), decisionSend},
		{"pending skips", state.Pending[string, int](state.None[int]()), decisionSkip},
		{"stale skips", state.Stale[string, int](1), decisionSkip},
		{"done skips", state.Done[string, int](1), decisionSkip},
		{"error skips", state.Error[string, int]("e"), decisionSkip},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := SendWhenEmpty[string, int, string, string](c.s, "r", "eff")
			assert.Equal(t, c.kind, d.kind)
		})
	}
}

func TestWithGroupWhenEmptyTable(t *testing.T) {
	cases := []struct {
		name string
		s    state.State[string, int]
		kind decisionKind
	}{
		{"empty sends group", state.Empty[string, int](), decisionSendGroup},
		{"pending stops group", state.Pending[string, int](state.None[int]()), decisionStopGroup},
		{"stale skips", state.Stale[string, int](1), decisionSkip},
		{"done skips", state.Done[string, int](1), decisionSkip},
		{"error skips", state.Error[string, int]("e"), decisionSkip},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := WithGroupWhenEmpty[string, int, string, string]("g", c.s, "r", "eff")
			assert.Equal(t, c.kind, d.kind)
			if c.kind == decisionSendGroup || c.kind == decisionStopGroup {
				assert.Equal(t, "g", d.group)
			}
		})
	}
}

func TestSendCarriesPayloadAndEffect(t *testing.T) {
	d := Send[string, string]("r", "eff")
	assert.Equal(t, decisionSend, d.kind)
	assert.Equal(t, "r", d.payload)
	assert.Equal(t, "eff", d.effect)
}

func TestSkipHasNoGroupOrPayload(t *testing.T) {
	d := Skip[string, string]()
	assert.Equal(t, decisionSkip, d.kind)
	assert.Equal(t, "", d.group)
	assert.Equal(t, "", d.payload)
}

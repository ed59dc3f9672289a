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

package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intEnc(i int) (any, error)       { return i, nil }
func strErrEnc(e string) (any, error) { return e, nil }

func intDec(raw json.RawMessage) (int, error) {
	var i int
	err := json.Unmarshal(raw, &i)
	return i, err
}

func strErrDec(raw json.RawMessage) (string, error) {
	var s string
	err := json.Unmarshal(raw, &s)
	return s, err
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   State[string, int]
	}{
		{"empty", Empty[string, int]()},
		{"pending none", Pending[string, int](None[int]())},
		{"pending some", Pending[string, int](Some(5))},
		{"stale", Stale[string, int](5)},
		{"done", Done[string, int](5)},
		{"error", Error[string, int]("boom")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := Encode(strErrEnc, intEnc, c.in)
			require.NoError(t, err)

			got, err := Decode(strErrDec, intDec, b)
			require.NoError(t, err)
			assert.Equal(t, c.in, got)
		})
	}
}

func TestEncodeDoneShape(t *testing.T) {
	b, err := Encode(strErrEnc, intEnc, Done[string, int](5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag":"Done","value":5}`, string(b))
}

func TestEncodeEmptyOmitsValue(t *testing.T) {
	b, err := Encode(strErrEnc, intEnc, Empty[string, int]())
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag":"Empty"}`, string(b))
}

func TestDecodeUnknownTag(t *testing.T) {
	_, err := Decode(strErrDec, intDec, []byte(`{"tag":"Unknown"}`))
	require.Error(t, err)
	assert.Equal(t, "Unknown tag: Unknown", err.Error())
}

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
	"fmt"
)

// ErrUnknownTag is returned by Decode when the wire object's tag field does
// not name one of the five variants.
type ErrUnknownTag struct {
	Tag string
}

func (e *ErrUnknownTag) Error() string {
	return fmt.Sprintf("Unknown tag: %s", e.Tag)
}

// wireState is the {"tag": ..., "value": ...} object form used on the wire.
// Empty omits value entirely; Pending encodes null when it has no prior
// value; every other variant's value is whatever encVal/encErr produced.
type wireState struct {
	Tag   string          `json:"tag"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Encode serializes s using encErr and encVal for the opaque E and A
// payloads, respectively.
func Encode[E, A any](encErr func(E) (any, error), encVal func(A) (any, error), s State[E, A]) ([]byte, error) {
	w := wireState{Tag: tagName(s.t)}

	switch s.t {
	case tagEmpty:
		// no value field at all
	case tagPending:
		if v, ok := s.prev.Get(); ok {
			b, err := marshalVia(encVal, v)
			if err != nil {
				return nil, err
			}
			w.Value = b
		} else {
			w.Value = json.RawMessage("null")
		}
	case tagStale, tagDone:
		b, err := marshalVia(encVal, s.val)
		if err != nil {
			return nil, err
		}
		w.Value = b
	case tagError:
		b, err := marshalVia(encErr, s.err)
		if err != nil {
			return nil, err
		}
		w.Value = b
	}

	return json.Marshal(w)
}

func marshalVia[X any](enc func(X) (any, error), x X) (json.RawMessage, error) {
	wire, err := enc(x)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// Decode parses the {"tag": ..., "value": ...} object form, using decErr and
// decVal for the opaque E and A payloads, respectively. It fails with an
// *ErrUnknownTag if the tag field doesn't name one of the five variants.
func Decode[E, A any](decErr func(json.RawMessage) (E, error), decVal func(json.RawMessage) (A, error), data []byte) (State[E, A], error) {
	var w wireState
	if err := json.Unmarshal(data, &w); err != nil {
		return State[E, A]{}, err
	}

	switch w.Tag {
	case "Empty":
		return Empty[E, A](), nil
	case "Pending":
		if len(w.Value) == 0 || string(w.Value) == "null" {
			return Pending[E, A](None[A]()), nil
		}
		v, err := decVal(w.Value)
		if err != nil {
			return State[E, A]{}, err
		}
		return Pending[E, A](Some(v)), nil
	case "Stale":
		v, err := decVal(w.Value)
		if err != nil {
			return State[E, A]{}, err
		}
		return Stale[E, A](v), nil
	case "Done":
		v, err := decVal(w.Value)
		if err != nil {
			return State[E, A]{}, err
		}
		return Done[E, A](v), nil
	case "Error":
		e, err := decErr(w.Value)
		if err != nil {
			return State[E, A]{}, err
		}
		return Error[E, A](e), nil
	default:
		return State[E, A]{}, &ErrUnknownTag{Tag: w.Tag}
	}
}

func tagName(t tag) string {
	switch t {
	case tagEmpty:
		return "Empty"
	case tagPending:
		return "Pending"
	case tagStale:
		return "Stale"
	case tagDone:
		return "Done"
	case tagError:
		return "Error"
	default:
		return "Empty"
	}
}

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

// concatEffects concatenates a and b, in order, without mutating either.
// Every combinator that appends effects from two Promises goes through
// this, so the "effects concatenate left-to-right" contract lives in one
// place.
func concatEffects[Effect any](a, b []Effect) []Effect {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]Effect, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

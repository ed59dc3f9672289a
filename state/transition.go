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

// SetPending moves s into the in-flight state, carrying forward whatever
// usable value s already had, so a revalidation can show the old value
// while a new one is fetched:
//
//	Empty        -> Pending(None)
//	Pending(p)    -> Pending(p)        (unchanged)
//	Stale(a)      -> Pending(Some a)
//	Done(a)       -> Pending(Some a)
//	Error(e)      -> Pending(None)
func SetPending[E, A any](s State[E, A]) State[E, A] {
	switch s.t {
	case tagPending:
		return s
	case tagStale, tagDone:
		return Pending[E, A](Some(s.val))
	default: // tagEmpty, tagError
		return Pending[E, A](None[A]())
	}
}

// MarkStale flags a Done value for refresh; every other variant is
// unchanged, and is idempotent under repeated application.
func MarkStale[E, A any](s State[E, A]) State[E, A] {
	if s.t == tagDone {
		return Stale[E, A](s.val)
	}
	return s
}

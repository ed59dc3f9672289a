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

// Package state provides the lifecycle tag for a remotely-loaded value.
//
// A State[E, A] is in exactly one of five variants, at any time:
// Empty: the value has never been requested.
// Pending: a request for the value is in flight. It may carry the last-known
// good value, for continuity, if one exists.
// Stale: a value is present and usable, but is flagged as due for a refresh.
// Done: a value is present and is the current, authoritative answer.
// Error: the last attempt to get the value failed, with a classified error.
//
// State values are immutable; every operation in this package returns a new
// State rather than mutating one in place.
//
// General Notes:-
//
// * E and A are opaque to every function in this package; nothing here
// requires them to satisfy any interface.
//
// * Exactly one tag applies to any given State value; payloads only exist for
// the variants listed above.
//
// * The two named transitions, SetPending and MarkStale, are the only
// sanctioned way to move a State value along its lifecycle outside of
// constructing a fresh one; see transition.go.
package state

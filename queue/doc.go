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

// Package queue maintains an ordered list of pending request records keyed
// by a monotonic, string-prefixed RequestId, and drives them through a
// per-request policy that can skip a request, send it, or send it subject
// to a named group exclusion (at most one in-flight member of a group at a
// time).
//
// General Notes:-
//
// * A Queue[R] never itself performs I/O; Run walks the queue and returns a
// promise.Promise whose value is the next Queue snapshot plus the
// Effect list to dispatch. Installing the snapshot and dispatching the
// Effects is the host's job, exactly as with the promise package on its
// own.
//
// * Identifiers never recycle within a Queue: add always consumes the next
// integer in sequence, even if earlier ids have since been removed.
//
// * Group exclusion is scoped to a single Run invocation: the set of
// "already sent" group names is built fresh on each call and discarded
// afterward. A group that sent this tick is free to send again next tick,
// once its in-flight entry resolves to something other than Pending.
package queue

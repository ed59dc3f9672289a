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

// Maybe is a proper option type for an optional A value.
//
// It exists instead of using a nil pointer or a sentinel A value, because A
// may legitimately include its own zero value, so "no value" has to be
// represented orthogonally to A's value space.
type Maybe[A any] struct {
	ok  bool
	val A
}

// Some wraps a present value.
func Some[A any](a A) Maybe[A] { return Maybe[A]{ok: true, val: a} }

// None represents the absence of a value.
func None[A any]() Maybe[A] { return Maybe[A]{} }

// Get returns the wrapped value and true, or the zero value and false.
func (m Maybe[A]) Get() (A, bool) { return m.val, m.ok }

// IsSome reports whether m wraps a value.
func (m Maybe[A]) IsSome() bool { return m.ok }

// Result is the pass/fail outcome of an operation that isn't itself a State,
// used by FromResult and State.ToResult to cross between the two shapes.
type Result[E, A any] struct {
	ok  bool
	val A
	err E
}

// Ok wraps a successful value.
func Ok[E, A any](a A) Result[E, A] { return Result[E, A]{ok: true, val: a} }

// Err wraps a failure value.
func Err[E, A any](e E) Result[E, A] { return Result[E, A]{err: e} }

// tag discriminates the five State variants. The order matches the order
// the package doc lists them in: Empty, Pending, Stale, Done, Error.
type tag uint8

const (
	tagEmpty tag = iota
	tagPending
	tagStale
	tagDone
	tagError
)

// State is a finite lifecycle tag for a remotely-loaded value of type A,
// whose failure is classified as an E.
//
// The zero value of State[E, A] is Empty.
type State[E, A any] struct {
	t    tag
	prev Maybe[A] // Pending's optional last-known-good value
	val  A        // Stale/Done's value
	err  E        // Error's payload
}

// Empty returns the never-requested State. It is also the zero value.
func Empty[E, A any]() State[E, A] {
	return State[E, A]{t: tagEmpty}
}

// Pending returns the in-flight State, optionally carrying the last-known
// good value for continuity while the new value is being fetched.
func Pending[E, A any](prev Maybe[A]) State[E, A] {
	return State[E, A]{t: tagPending, prev: prev}
}

// Stale returns the usable-but-due-for-refresh State.
func Stale[E, A any](a A) State[E, A] {
	return State[E, A]{t: tagStale, val: a}
}

// Done returns the fresh, authoritative State.
func Done[E, A any](a A) State[E, A] {
	return State[E, A]{t: tagDone, val: a}
}

// Error returns the failed State, classified by e.
func Error[E, A any](e E) State[E, A] {
	return State[E, A]{t: tagError, err: e}
}

// FromResult lifts a Result into the equivalent terminal State: Ok becomes
// Done, Err becomes Error.
func FromResult[E, A any](r Result[E, A]) State[E, A] {
	if r.ok {
		return Done[E, A](r.val)
	}
	return Error[E, A](r.err)
}

// FromMaybe lifts a Maybe into the equivalent State: Some becomes Done,
// None becomes Empty.
func FromMaybe[E, A any](m Maybe[A]) State[E, A] {
	if v, ok := m.Get(); ok {
		return Done[E, A](v)
	}
	return Empty[E, A]()
}

// IsEmpty reports whether s is the never-requested State.
func (s State[E, A]) IsEmpty() bool { return s.t == tagEmpty }

// IsPending reports whether s is in flight, with or without a carried value.
func (s State[E, A]) IsPending() bool { return s.t == tagPending }

// IsStale reports whether s is usable but due for a refresh.
func (s State[E, A]) IsStale() bool { return s.t == tagStale }

// IsDone reports whether s is fresh and authoritative.
func (s State[E, A]) IsDone() bool { return s.t == tagDone }

// IsError reports whether s failed.
func (s State[E, A]) IsError() bool { return s.t == tagError }

// Code returns a stable, CSS-class-friendly string for s, for view-layer
// class binding: one of state-empty, state-pending, state-stale, state-done,
// state-error.
func (s State[E, A]) Code() string {
	switch s.t {
	case tagEmpty:
		return "state-empty"
	case tagPending:
		return "state-pending"
	case tagStale:
		return "state-stale"
	case tagDone:
		return "state-done"
	case tagError:
		return "state-error"
	default:
		return "state-empty"
	}
}

// ToMaybe returns the usable value carried by s: the carried previous value
// for Pending, the value for Stale and Done, and None otherwise.
func (s State[E, A]) ToMaybe() Maybe[A] {
	switch s.t {
	case tagPending:
		return s.prev
	case tagStale, tagDone:
		return Some(s.val)
	default:
		return None[A]()
	}
}

// GetError returns the Error payload, and true, only if s is Error.
func (s State[E, A]) GetError() (E, bool) {
	if s.t == tagError {
		return s.err, true
	}
	var zero E
	return zero, false
}

// ToResult collapses s to a Result: Empty and Pending(None) become
// Ok(def); Pending(Some a), Stale, and Done become Ok(a); Error becomes
// Err(e).
func (s State[E, A]) ToResult(def A) Result[E, A] {
	switch s.t {
	case tagError:
		return Err[E, A](s.err)
	case tagPending:
		if v, ok := s.prev.Get(); ok {
			return Ok[E, A](v)
		}
		return Ok[E, A](def)
	case tagStale, tagDone:
		return Ok[E, A](s.val)
	default: // tagEmpty
		return Ok[E, A](def)
	}
}

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

// Map applies f under every variant's payload: Empty and Error pass
// through unchanged (Error's E is untouched, since Map only transforms A);
// Pending's carried previous value, if any, is mapped; Stale and Done map
// their value.
func Map[E, A, B any](f func(A) B, s State[E, A]) State[E, B] {
	switch s.t {
	case tagPending:
		if v, ok := s.prev.Get(); ok {
			return Pending[E, B](Some(f(v)))
		}
		return Pending[E, B](None[B]())
	case tagStale:
		return Stale[E, B](f(s.val))
	case tagDone:
		return Done[E, B](f(s.val))
	case tagError:
		return Error[E, B](s.err)
	default: // tagEmpty
		return Empty[E, B]()
	}
}

// andMapKind is the 4-way classification AndMap's table is built from: Empty
// absorbs like Pending(None), and Stale behaves like Done, for the purposes
// of applicative combination only (unary Map preserves both as themselves).
type andMapKind uint8

const (
	kindPendingNone andMapKind = iota
	kindPendingSome
	kindDone
	kindError
)

func classify[E, X any](s State[E, X]) (k andMapKind, val X, err E) {
	switch s.t {
	case tagError:
		return kindError, val, s.err
	case tagPending:
		if v, ok := s.prev.Get(); ok {
			return kindPendingSome, v, err
		}
		return kindPendingNone, val, err
	case tagStale, tagDone:
		return kindDone, s.val, err
	default: // tagEmpty
		return kindPendingNone, val, err
	}
}

// Recast rebuilds s under a different error type E2. It must not be called
// on an Error state, since there is no E1->E2 value to carry across; every
// other variant carries no E payload at all, so the rebuild is total.
func Recast[E1, E2, A any](s State[E1, A]) State[E2, A] {
	switch s.t {
	case tagPending:
		return Pending[E2, A](s.prev)
	case tagStale:
		return Stale[E2, A](s.val)
	case tagDone:
		return Done[E2, A](s.val)
	case tagError:
		panic("state: Recast called on an Error state")
	default: // tagEmpty
		return Empty[E2, A]()
	}
}

// AndMap is the applicative product: it combines a State of a function with
// a State of an argument. Errors are left-biased: if sf is Error, its error
// wins even if sa is also Error. Otherwise, an Empty or Pending(None) on
// either side gives Pending(None); a Pending(Some) on either side gives
// Pending(Some(f(a))); Stale or Done on both sides gives Done(f(a)).
func AndMap[E, A, B any](sf State[E, func(A) B], sa State[E, A]) State[E, B] {
	kf, f, ef := classify[E, func(A) B](sf)
	if kf == kindError {
		return Error[E, B](ef)
	}
	ka, a, ea := classify[E, A](sa)
	if ka == kindError {
		return Error[E, B](ea)
	}

	switch kf {
	case kindPendingNone:
		return Pending[E, B](None[B]())
	case kindPendingSome:
		if ka == kindPendingNone {
			return Pending[E, B](None[B]())
		}
		return Pending[E, B](Some(f(a)))
	default: // kindDone
		switch ka {
		case kindPendingNone:
			return Pending[E, B](None[B]())
		case kindDone:
			return Done[E, B](f(a))
		default: // kindPendingSome
			return Pending[E, B](Some(f(a)))
		}
	}
}

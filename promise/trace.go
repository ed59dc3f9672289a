// Copyright 2024 Ahmad Sameh(asmsh)
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

// traceEvent names a point in Promise evaluation worth observing when
// tracing is built in (see trace_enabled.go): there is nothing here to
// report about scheduling, only about what a combinator saw and did.
type traceEvent int

const (
	_ traceEvent = iota

	traceRevalidateFire
	traceRevalidateWait
	traceRevalidateServe
	traceRevalidateSurface

	traceRun
)

func (e traceEvent) String() string {
	switch e {
	case traceRevalidateFire:
		return "revalidate:fire"
	case traceRevalidateWait:
		return "revalidate:wait"
	case traceRevalidateServe:
		return "revalidate:serve"
	case traceRevalidateSurface:
		return "revalidate:surface"
	case traceRun:
		return "run"
	default:
		return "<unknown>"
	}
}

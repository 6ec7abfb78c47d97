// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the checked facades.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - The faithful Matrix methods take no options; only Checked* consume them.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Epsilon is the absolute tolerance used by Equal: two elements match when
// |a-b| < Epsilon.
const Epsilon = 1e-7

// MaxElements caps rows*cols for New, Create and NewFromRows (8 GiB of
// float64). Larger shapes are rejected with ErrInvalidDimensions.
const MaxElements = 1 << 30

// DefaultSingularEpsilon is the default |det| threshold below which
// CheckedInverse reports ErrSingular.
const DefaultSingularEpsilon = Epsilon

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps float64 // >= 0; DefaultSingularEpsilon
}

// WithEpsilon sets the tolerance used by CheckedInverse to decide singularity.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Panics with a stable message when eps is invalid.
//   - eps == 0 reproduces the exact det == 0 test of Inverse.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user-provided setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultSingularEpsilon}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package assert

import (
	"fmt"
	"math"
	"reflect"
)

const (
	// DefaultRel is the default relative tolerance of approximate
	// equality.
	DefaultRel = 1e-6

	// DefaultAbs is the default absolute tolerance of approximate
	// equality.
	DefaultAbs = 1e-12
)

// Tolerance combines a relative and an absolute tolerance.  Two
// scalars a (actual) and e (expected) are approximately equal iff
//
//	|a-e| <= max(Abs, Rel*|e|)
type Tolerance struct {
	Rel, Abs float64
}

// DefaultTolerance is the tolerance applied if no option is given.
var DefaultTolerance = Tolerance{Rel: DefaultRel, Abs: DefaultAbs}

// Option adjusts the tolerance of an approximate comparison.
type Option func(*tolerances)

type tolerances struct {
	rel, abs *float64
}

// Rel sets the relative tolerance.  The absolute tolerance keeps its
// default unless Abs is given as well.
func Rel(r float64) Option { return func(t *tolerances) { t.rel = &r } }

// Abs sets the absolute tolerance.  Unless Rel is given as well the
// relative tolerance is not considered at all.
func Abs(a float64) Option { return func(t *tolerances) { t.abs = &a } }

// With sets both tolerances to the ones of given Tolerance.
func With(tt Tolerance) Option {
	return func(t *tolerances) { t.rel, t.abs = &tt.Rel, &tt.Abs }
}

// NewTolerance returns the tolerance resulting from given options
// applied to the defaults.
func NewTolerance(oo ...Option) Tolerance {
	tt := tolerances{}
	for _, o := range oo {
		o(&tt)
	}
	switch {
	case tt.rel == nil && tt.abs == nil:
		return DefaultTolerance
	case tt.rel == nil:
		return Tolerance{Abs: *tt.abs}
	case tt.abs == nil:
		return Tolerance{Rel: *tt.rel, Abs: DefaultAbs}
	}
	return Tolerance{Rel: *tt.rel, Abs: *tt.abs}
}

// Scalar reports if given numbers are approximately equal.
func (t Tolerance) Scalar(actual, expected float64) bool {
	if actual == expected {
		return true
	}
	if math.IsNaN(actual) || math.IsNaN(expected) ||
		math.IsInf(actual, 0) || math.IsInf(expected, 0) {
		return false
	}
	return math.Abs(actual-expected) <=
		math.Max(t.Abs, t.Rel*math.Abs(expected))
}

// ApproxEqual reports if given values are approximately equal.  Numbers
// of any numeric kind are compared as scalars (see Tolerance), slices
// and arrays element-wise requiring the same length, maps key-wise
// requiring the same key set and pointers and interfaces by what they
// refer to.  Other values must be deeply equal.  A length or key-set
// mismatch makes the values unequal rather than raising a failure.
func ApproxEqual(actual, expected interface{}, oo ...Option) bool {
	return NewTolerance(oo...).Equal(actual, expected)
}

// Equal is ApproxEqual with receiving tolerance.
func (t Tolerance) Equal(actual, expected interface{}) bool {
	return t.equal(reflect.ValueOf(actual), reflect.ValueOf(expected))
}

func (t Tolerance) equal(a, e reflect.Value) bool {
	a, e = unwrap(a), unwrap(e)
	if !a.IsValid() || !e.IsValid() {
		return a.IsValid() == e.IsValid()
	}
	if a.Kind() == reflect.Interface || e.Kind() == reflect.Interface {
		return isNilValue(a) && isNilValue(e)
	}
	if af, ok := toFloat(a); ok {
		ef, ok := toFloat(e)
		return ok && t.Scalar(af, ef)
	}
	switch a.Kind() {
	case reflect.Ptr:
		if e.Kind() != reflect.Ptr {
			return t.equal(a.Elem(), e)
		}
		if a.IsNil() || e.IsNil() {
			return a.IsNil() && e.IsNil()
		}
		return t.equal(a.Elem(), e.Elem())
	case reflect.Slice, reflect.Array:
		if e.Kind() != reflect.Slice && e.Kind() != reflect.Array {
			return false
		}
		if a.Len() != e.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !t.equal(a.Index(i), e.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if e.Kind() != reflect.Map || a.Len() != e.Len() {
			return false
		}
		if !a.Type().Key().AssignableTo(e.Type().Key()) {
			return false
		}
		for _, k := range a.MapKeys() {
			ev := e.MapIndex(k)
			if !ev.IsValid() || !t.equal(a.MapIndex(k), ev) {
				return false
			}
		}
		return true
	}
	if e.Kind() == reflect.Ptr {
		return t.equal(a, e.Elem())
	}
	if !a.CanInterface() || !e.CanInterface() {
		return false
	}
	return reflect.DeepEqual(a.Interface(), e.Interface())
}

// unwrap returns the dynamic value of a non-nil interface value.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func toFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	}
	return 0, false
}

// approxErr default explanation for failed 'Approx'-assertion.
const approxErr = "%v !~ %v (rel=%g, abs=%g)\n%s"

// Approx raises a failure iff given values are not approximately equal
// (see ApproxEqual).
func Approx(actual, expected interface{}, oo ...Option) {
	t := NewTolerance(oo...)
	if t.Equal(actual, expected) {
		return
	}
	raise("approx", fmt.Sprintf(
		approxErr, actual, expected, t.Rel, t.Abs, diff(actual, expected)))
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gocase

import (
	"github.com/slukits/gocase/pkg/assert"
)

// True fails the invocation iff given value is not true.  The failure
// message is given message or defaults to the source text of given
// condition (see assert.That).
func (t *T) True(value bool, msg ...interface{}) {
	assert.ThatSkip(1, value, msg...)
}

// falseErr default message for failed 'false'-assertion.
const falseErr = "expected given value to be false"

// False fails the invocation iff given value is not false.
func (t *T) False(value bool, msg ...interface{}) {
	if !value {
		return
	}
	if len(msg) == 0 {
		msg = []interface{}{falseErr}
	}
	assert.Fail(msg...)
}

// TODO fails an invocation reporting "not implemented yet".
func (t *T) TODO() { assert.Fail("not implemented yet") }

// Eq fails the invocation with a diff iff given values are not of the
// same type or not deeply equal (see assert.Eq).
func (t *T) Eq(a, b interface{}, msg ...interface{}) { assert.Eq(a, b, msg...) }

// NotEq fails the invocation iff given values are equal (see
// assert.NotEq).
func (t *T) NotEq(a, b interface{}, msg ...interface{}) {
	assert.NotEq(a, b, msg...)
}

// Contains fails the invocation iff given value doesn't contain given
// element (see assert.Contains).
func (t *T) Contains(value, element interface{}, msg ...interface{}) {
	assert.Contains(value, element, msg...)
}

// NotContains fails the invocation iff given value contains given
// element.
func (t *T) NotContains(value, element interface{}, msg ...interface{}) {
	assert.NotContains(value, element, msg...)
}

// Matched fails the invocation iff given value's string representation
// isn't matched by given regular expression.
func (t *T) Matched(value interface{}, regex string, msg ...interface{}) {
	assert.Matched(value, regex, msg...)
}

// Nil fails the invocation iff given value isn't nil.
func (t *T) Nil(value interface{}, msg ...interface{}) { assert.Nil(value, msg...) }

// NotNil fails the invocation iff given value is nil.
func (t *T) NotNil(value interface{}, msg ...interface{}) {
	assert.NotNil(value, msg...)
}

// Len fails the invocation iff given value's length isn't given length.
func (t *T) Len(value interface{}, n int, msg ...interface{}) {
	assert.Len(value, n, msg...)
}

// Truthy fails the invocation iff given value is falsy (see
// assert.Truthy).
func (t *T) Truthy(value interface{}, msg ...interface{}) {
	assert.Truthy(value, msg...)
}

// Falsy fails the invocation iff given value is truthy.
func (t *T) Falsy(value interface{}, msg ...interface{}) {
	assert.Falsy(value, msg...)
}

// ErrIs fails the invocation iff given error doesn't wrap given target.
func (t *T) ErrIs(err, target error, msg ...interface{}) {
	assert.ErrIs(err, target, msg...)
}

// Approx fails the invocation iff given values are not approximately
// equal (see assert.ApproxEqual).  Without options the registry's
// tolerance applies (see WithTolerance).
func (t *T) Approx(actual, expected interface{}, oo ...assert.Option) {
	if len(oo) == 0 {
		oo = []assert.Option{assert.With(t.tolerance)}
	}
	assert.Approx(actual, expected, oo...)
}

// Raises fails the invocation iff given body doesn't fail with an error
// of given kind and returns the captured error otherwise (see
// assert.Raises).
func (t *T) Raises(kind assert.Kind, body func() error) *assert.Raised {
	return assert.Raises(kind, body)
}

// RaisesMatch is Raises additionally requiring the captured error's
// message to be matched by given regular expression.
func (t *T) RaisesMatch(
	kind assert.Kind, pattern string, body func() error,
) *assert.Raised {
	return assert.RaisesMatch(kind, pattern, body)
}

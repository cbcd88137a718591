// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package assert evaluates conditions of a test body.  A failing
// evaluation raises a *Failure by panicking which stops the remaining
// body; the invocation boundary of gocase recovers it and marks only
// the invocation it was raised in as failed:
//
//	a, b := 0.1, 0.2
//	assert.That(add(1, 2) == 3)
//	assert.That(a+b == 0.3) // fails: "assert: a+b == 0.3"
//	assert.Approx(a+b, 0.3) // passes
//
//	r := assert.RaisesMatch(assert.As[*strconv.NumError](), "invalid",
//	    func() error { _, err := strconv.Atoi("hello"); return err })
//	assert.Contains(r.Message, "hello")
//
// Outside of an invocation Catch may be used to obtain a raised
// failure.
package assert

import (
	"fmt"
	"strings"
)

// Failure is raised by a failing evaluation.  For failed expectations
// of an error Kind and Captured describe the error which was actually
// produced by the evaluated body.
type Failure struct {

	// Message explains why the evaluation failed.
	Message string

	// Kind of the captured error if any.
	Kind string

	// Captured message of the captured error if any.
	Captured string

	// Cause is an unrelated error which was produced instead of the
	// expected one.
	Cause error
}

func (f *Failure) Error() string {
	if f.Cause == nil {
		return f.Message
	}
	return fmt.Sprintf("%s: %v", f.Message, f.Cause)
}

// Unwrap returns the unrelated error a failure was raised for.
func (f *Failure) Unwrap() error { return f.Cause }

// assertErr is the format-string for assertion failure messages.
const assertErr = "assert %s:\n%v"

// raise panics with a failure for given assertion-name and explanation.
func raise(name string, explanation interface{}) {
	panic(&Failure{Message: fmt.Sprintf(assertErr, name, explanation)})
}

// Fail raises a failure with given message formatted by fmt.Sprint.
func Fail(args ...interface{}) {
	panic(&Failure{Message: fmt.Sprint(args...)})
}

// Failf raises a failure with given message formatted by fmt.Sprintf.
func Failf(format string, args ...interface{}) {
	panic(&Failure{Message: fmt.Sprintf(format, args...)})
}

// Catch runs given function and returns the failure it raised or nil if
// it completed.  Other panics are not recovered.
func Catch(f func()) (failure *Failure) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if fl, ok := r.(*Failure); ok {
			failure = fl
			return
		}
		panic(r)
	}()
	f()
	return nil
}

// message turns optional user-provided message arguments into a
// message.  A leading format string containing a verb is formatted by
// fmt.Sprintf.
func message(args []interface{}) string {
	if len(args) == 0 {
		return ""
	}
	if format, ok := args[0].(string); ok && len(args) > 1 &&
		strings.Contains(format, "%") {
		return fmt.Sprintf(format, args[1:]...)
	}
	return fmt.Sprint(args...)
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package assert

import (
	"errors"
	"fmt"
	"regexp"
)

// Kind selects the errors an expected failure accepts.  Matching is
// closed: an error is only accepted if Match says so.  Any is the only
// broad matcher and must be asked for explicitly.
type Kind interface {
	Match(error) bool
	String() string
}

type isKind struct{ target error }

// Is matches errors which are or wrap given target (see errors.Is).
func Is(target error) Kind { return isKind{target: target} }

func (k isKind) Match(err error) bool { return errors.Is(err, k.target) }

func (k isKind) String() string { return fmt.Sprintf("%q", k.target) }

type asKind[E error] struct{}

// As matches errors which are or wrap an error of type E (see
// errors.As).  E is typically a pointer type, e.g.
//
//	assert.As[*strconv.NumError]()
func As[E error]() Kind { return asKind[E]{} }

func (asKind[E]) Match(err error) bool {
	var e E
	return errors.As(err, &e)
}

func (asKind[E]) String() string {
	var e E
	return fmt.Sprintf("%T", e)
}

type anyKind struct{}

// Any matches every error but assertion failures.  Prefer a specific
// kind: an overly broad expectation masks unrelated failures.
func Any() Kind { return anyKind{} }

func (anyKind) Match(err error) bool {
	var f *Failure
	return err != nil && !errors.As(err, &f)
}

func (anyKind) String() string { return "any error" }

// PanicError represents a panic of an expected-failure body whose value
// isn't an error.
type PanicError struct{ Value interface{} }

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// Raised describes the error captured by a met expectation.
type Raised struct {

	// Err is the captured error.
	Err error

	// Kind is the type of the captured error, e.g. "*strconv.NumError".
	Kind string

	// Message is the captured error's message.
	Message string
}

// KindOf returns the kind of given error as reported by failures and
// Raised, i.e. its dynamic type.
func KindOf(err error) string { return fmt.Sprintf("%T", err) }

const (
	// noneRaisedErr default explanation if a body didn't fail.
	noneRaisedErr = "expected error of kind %s, none raised"

	// otherKindErr default explanation if a body failed differently.
	otherKindErr = "expected kind %s, got kind %s"

	// patternErr default explanation if a captured message isn't
	// matched.
	patternErr = "pattern %q doesn't match message %q"
)

// Raises runs given body and raises a failure iff it neither returns
// nor panics with an error matching given kind.  An error of an other
// kind isn't swallowed: it becomes the cause of the raised failure.
// An assertion failure raised by body propagates unchanged unless kind
// explicitly matches it.  On success the captured error is returned.
func Raises(kind Kind, body func() error) *Raised {
	return raises(kind, nil, body)
}

// RaisesMatch is Raises which additionally requires the captured
// error's message to be matched by given regular expression (see
// regexp.MatchString).
func RaisesMatch(kind Kind, pattern string, body func() error) *Raised {
	return raises(kind, regexp.MustCompile(pattern), body)
}

func raises(kind Kind, re *regexp.Regexp, body func() error) *Raised {
	err := capture(kind, body)
	if err == nil {
		panic(&Failure{
			Message: fmt.Sprintf(assertErr, "raises",
				fmt.Sprintf(noneRaisedErr, kind))})
	}
	if !kind.Match(err) {
		panic(&Failure{
			Message: fmt.Sprintf(assertErr, "raises",
				fmt.Sprintf(otherKindErr, kind, KindOf(err))),
			Kind:     KindOf(err),
			Captured: err.Error(),
			Cause:    err,
		})
	}
	if re != nil && !re.MatchString(err.Error()) {
		panic(&Failure{
			Message: fmt.Sprintf(assertErr, "raises",
				fmt.Sprintf(patternErr, re.String(), err.Error())),
			Kind:     KindOf(err),
			Captured: err.Error(),
		})
	}
	return &Raised{Err: err, Kind: KindOf(err), Message: err.Error()}
}

// capture runs given body and returns the error it returned or
// panicked with.  Assertion failures not matched by given kind are
// passed on.
func capture(kind Kind, body func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch r := r.(type) {
		case *Failure:
			if !kind.Match(r) {
				panic(r)
			}
			err = r
		case error:
			err = r
		default:
			err = &PanicError{Value: r}
		}
	}()
	return body()
}

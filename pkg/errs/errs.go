// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package errs provides the error kinds shared by gocase's packages
// which are not assertion failures: construction errors raised while
// cases, parameter axes or fixture graphs are registered and teardown
// errors raised by the cleanup of scoped fixtures.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Construction reports a structurally invalid registration, e.g. a
// parameter row whose width doesn't match its axis' arity, a fixture
// dependency cycle, an unknown fixture name or a duplicate id.  A
// construction error is always fatal to the registration it was raised
// for.
type Construction struct {

	// What names the kind of the registered entity, e.g. "case",
	// "axis" or "fixture".
	What string

	// Name identifies the registered entity.
	Name string

	err error
}

// Constructionf returns a new construction error for given entity whose
// cause is formatted from given format string and arguments.  The cause
// records the stack of the caller.
func Constructionf(
	what, name, format string, args ...interface{},
) error {
	return &Construction{
		What: what,
		Name: name,
		err:  errors.Errorf(format, args...),
	}
}

// WrapConstruction returns a construction error for given entity
// wrapping given cause; nil if cause is nil.
func WrapConstruction(what, name string, cause error) error {
	if cause == nil {
		return nil
	}
	var c *Construction
	if errors.As(cause, &c) && c.What == what && c.Name == name {
		return cause
	}
	return &Construction{What: what, Name: name, err: errors.WithStack(cause)}
}

func (e *Construction) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("construct %s: %v", e.What, e.err)
	}
	return fmt.Sprintf("construct %s %q: %v", e.What, e.Name, e.err)
}

// Unwrap returns the cause of a construction error.
func (e *Construction) Unwrap() error { return e.err }

// IsConstruction returns true iff given error is or wraps a
// construction error.
func IsConstruction(err error) bool {
	var c *Construction
	return errors.As(err, &c)
}

// Teardown reports the failed cleanup of a scoped fixture.
type Teardown struct {
	Fixture string
	Err     error
}

func (e *Teardown) Error() string {
	return fmt.Sprintf("teardown %q: %v", e.Fixture, e.Err)
}

// Unwrap returns the error the fixture's cleanup failed with.
func (e *Teardown) Unwrap() error { return e.Err }

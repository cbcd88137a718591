// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixture defines named data and resource providers which may
// depend on each other and materializes them freshly for each single
// invocation of a case:
//
//	fx := fixture.NewRegistry()
//	fx.Add(fixture.NewSimple("sample_list",
//	    func(fixture.Values) (interface{}, error) {
//	        return []int{1, 2, 3, 4, 5}, nil
//	    }))
//	fx.Add(fixture.NewSimple("doubled_list",
//	    func(vv fixture.Values) (interface{}, error) {
//	        dd := []int{}
//	        for _, v := range vv.Get("sample_list").([]int) {
//	            dd = append(dd, 2*v)
//	        }
//	        return dd, nil
//	    }, "sample_list"))
//
// A scoped fixture's provider returns a cleanup along with its value.
// Cleanups run after the case's body in reverse order of instantiation
// no matter if the body failed.
package fixture

import (
	"os"
)

// Kind is the lifecycle kind of a fixture definition.
type Kind int

const (
	// Simple fixtures provide a value and need no cleanup.
	Simple Kind = iota

	// Scoped fixtures provide a value and a cleanup which runs after
	// the body of the invocation the value was provided for.
	Scoped
)

func (k Kind) String() string {
	if k == Scoped {
		return "scoped"
	}
	return "simple"
}

// Values gives a provider read access to the already instantiated
// fixtures of its invocation.
type Values interface {

	// Get returns the value of given fixture name which must be a
	// declared dependency of the requesting fixture; nil otherwise.
	Get(name string) interface{}

	// Invocation identifies the invocation the values belong to.
	Invocation() string
}

// Cleanup releases what a scoped fixture acquired.
type Cleanup func() error

// Provider creates a simple fixture's value.
type Provider func(Values) (interface{}, error)

// ScopedProvider creates a scoped fixture's value and its cleanup.  A
// non-nil cleanup returned together with an error still runs at
// teardown, i.e. it must cope with a partially acquired resource.
type ScopedProvider func(Values) (interface{}, Cleanup, error)

// Definition describes a fixture.  A definition is read-only once it
// was added to a registry.
type Definition struct {
	Name string
	Deps []string
	Kind Kind

	provide func(Values) (interface{}, Cleanup, error)
}

// NewSimple returns the definition of a simple fixture with given name
// whose value is created by given provider after given dependencies
// were instantiated.
func NewSimple(name string, p Provider, deps ...string) *Definition {
	return &Definition{
		Name: name,
		Deps: append([]string(nil), deps...),
		Kind: Simple,
		provide: func(vv Values) (interface{}, Cleanup, error) {
			v, err := p(vv)
			return v, nil, err
		},
	}
}

// NewScoped returns the definition of a scoped fixture with given name
// whose value and cleanup are created by given provider after given
// dependencies were instantiated.
func NewScoped(name string, p ScopedProvider, deps ...string) *Definition {
	return &Definition{
		Name:    name,
		Deps:    append([]string(nil), deps...),
		Kind:    Scoped,
		provide: p,
	}
}

// Value returns the definition of a simple fixture whose value is
// created by calling given function for every invocation.
func Value(name string, fresh func() interface{}) *Definition {
	return NewSimple(name, func(Values) (interface{}, error) {
		return fresh(), nil
	})
}

// TempDir returns the definition of a scoped fixture providing the path
// of a new temporary directory which is removed with its content after
// the invocation's body.
func TempDir(name string) *Definition {
	return NewScoped(name, func(Values) (interface{}, Cleanup, error) {
		dir, err := os.MkdirTemp("", "gocase-"+name+"-*")
		if err != nil {
			return nil, nil, err
		}
		return dir, func() error { return os.RemoveAll(dir) }, nil
	})
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tutorial

import (
	"github.com/slukits/gocase"
)

// Lesson builds the registry of one tutorial lesson.
type Lesson struct {
	Name string
	New  func(...gocase.Option) *gocase.Registry
}

// Lessons returns the tutorial's lessons in teaching order.
func Lessons() []Lesson {
	return []Lesson{
		{Name: "basic-assert", New: BasicAssert},
		{Name: "parametrize", New: Parametrize},
		{Name: "exception", New: Exception},
		{Name: "fixture", New: Fixture},
	}
}

// mustAdd registers given cases at given registry.  The lessons are
// fixed content, a construction error is a bug.
func mustAdd(r *gocase.Registry, cc ...gocase.Case) *gocase.Registry {
	for _, c := range cc {
		if err := r.Add(c); err != nil {
			panic(err)
		}
	}
	return r
}

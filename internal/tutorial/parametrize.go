// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tutorial

import (
	"github.com/slukits/gocase"
	"github.com/slukits/gocase/pkg/param"
)

// Parametrize returns the lesson on parametrized cases: single and
// multiple parameters, display ids, the boundaries of a grade
// classifier, a username validator and the Cartesian product of two
// axes.
func Parametrize(oo ...gocase.Option) *gocase.Registry {
	return mustAdd(gocase.NewRegistry(oo...),
		gocase.Case{
			Name: "single_param",
			Axes: []*param.Axis{param.Values("number", 1, 2, 3, 4, 5)},
			Body: func(t *gocase.T) {
				t.True(gocase.Get[int](t, "number") > 0)
			},
		},
		gocase.Case{
			Name: "multiple_params",
			Axes: []*param.Axis{param.New("a, b, expected",
				param.V(1, 2, 3),
				param.V(0, 0, 0),
				param.V(-1, 1, 0),
				param.V(100, 200, 300),
			)},
			Body: func(t *gocase.T) {
				t.Eq(Add(gocase.Get[int](t, "a"), gocase.Get[int](t, "b")),
					gocase.Get[int](t, "expected"))
			},
		},
		gocase.Case{
			Name: "with_ids",
			Axes: []*param.Axis{param.New("a, b, expected",
				param.V(1, 2, 3).ID("positive"),
				param.V(0, 0, 0).ID("zeros"),
				param.V(-1, -2, -3).ID("negative"),
			)},
			Body: func(t *gocase.T) {
				t.Eq(Add(gocase.Get[int](t, "a"), gocase.Get[int](t, "b")),
					gocase.Get[int](t, "expected"))
			},
		},
		gocase.Case{
			Name: "grade_boundaries",
			Axes: []*param.Axis{param.New("score, grade",
				param.V(100, "A"), param.V(90, "A"), param.V(89, "B"),
				param.V(80, "B"), param.V(79, "C"), param.V(70, "C"),
				param.V(69, "D"), param.V(60, "D"), param.V(59, "F"),
				param.V(0, "F"),
			)},
			Body: func(t *gocase.T) {
				t.Eq(Classify(gocase.Get[int](t, "score")),
					gocase.Get[string](t, "grade"))
			},
		},
		gocase.Case{
			Name: "valid_usernames",
			Axes: []*param.Axis{param.Values("name",
				"bob", "alice_42", "z1234567890123456789")},
			Body: func(t *gocase.T) {
				t.Nil(ValidateUsername(gocase.Get[string](t, "name")))
			},
		},
		gocase.Case{
			Name: "invalid_usernames",
			Axes: []*param.Axis{param.New("name, err",
				param.V("ab", ErrUsernameLength).ID("too_short"),
				param.V("a23456789012345678901", ErrUsernameLength).
					ID("too_long"),
				param.V("1abc", ErrUsernameStart).ID("leading_digit"),
				param.V("bob!", ErrUsernameChar).ID("special_char"),
			)},
			Body: func(t *gocase.T) {
				t.ErrIs(ValidateUsername(gocase.Get[string](t, "name")),
					gocase.Get[error](t, "err"))
			},
		},
		gocase.Case{
			Name: "cartesian_product",
			Axes: []*param.Axis{
				param.Values("x", 0, 1),
				param.Values("y", 2, 3),
			},
			Body: func(t *gocase.T) {
				x, y := gocase.Get[int](t, "x"), gocase.Get[int](t, "y")
				t.Eq(Add(x, y), Add(y, x))
			},
		},
	)
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package param

import (
	"strings"

	"github.com/slukits/gocase/pkg/errs"
)

func constructionf(a *Axis, format string, args ...interface{}) error {
	return errs.Constructionf("axis", a.String(), format, args...)
}

// Combination is one element of an expansion: one row of each axis.
type Combination struct {

	// ID identifies a combination within its expansion.  It is empty
	// iff no axis was expanded.
	ID string

	// Index is the position of a combination in its expansion.
	Index int

	names  []string
	values map[string]interface{}
}

// Get returns the value bound to given parameter name and true; false
// if the name isn't bound.
func (c Combination) Get(name string) (interface{}, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Names returns the parameter names bound by a combination in
// declaration order.
func (c Combination) Names() []string {
	return append([]string(nil), c.names...)
}

// Expansion is a lazy, finite and non-restartable sequence of the
// combinations of a list of axes.  An Expansion must not be used
// concurrently.
type Expansion struct {
	axes []*Axis
	ids  [][]string
	idx  []int // current row of each axis
	n    int   // number of combinations
	next int   // index of the next combination
}

// Expand validates given axes and returns the expansion of their
// Cartesian product whereas the first axis is the outer loop.  Without
// axes the expansion has exactly one combination.  A row whose width
// differs from its axis' arity, a parameter name declared by two axes
// and colliding explicit ids are construction errors.
func Expand(axes ...*Axis) (*Expansion, error) {
	x := &Expansion{axes: axes, n: 1, idx: make([]int, len(axes))}
	declared := map[string]bool{}
	for _, a := range axes {
		if err := a.validate(); err != nil {
			return nil, err
		}
		for _, n := range a.names {
			if declared[n] {
				return nil, constructionf(a,
					"parameter %q is declared twice", n)
			}
			declared[n] = true
		}
		ids, err := a.ids()
		if err != nil {
			return nil, err
		}
		x.ids = append(x.ids, ids)
		x.n *= len(a.rows)
	}
	if err := x.uniqueIDs(); err != nil {
		return nil, err
	}
	return x, nil
}

// uniqueIDs enumerates the ids of all combinations of an expansion and
// reports the first collision as construction error.
func (x *Expansion) uniqueIDs() error {
	seen, idx := make(map[string]bool, x.n), make([]int, len(x.axes))
	for i := 0; i < x.n; i++ {
		id := x.id(idx)
		if seen[id] {
			return errs.Constructionf("axis", x.names(),
				"combination id %q is not unique", id)
		}
		seen[id] = true
		odometer(idx, x.axes)
	}
	return nil
}

func (x *Expansion) names() string {
	nn := []string{}
	for _, a := range x.axes {
		nn = append(nn, a.String())
	}
	return strings.Join(nn, " x ")
}

// Len returns the number of combinations of an expansion, i.e. the
// product of the row counts of its axes.
func (x *Expansion) Len() int { return x.n }

// Next returns the next combination and true; false if all
// combinations were returned.
func (x *Expansion) Next() (Combination, bool) {
	if x.next >= x.n {
		return Combination{}, false
	}
	c := Combination{
		ID:     x.id(x.idx),
		Index:  x.next,
		values: map[string]interface{}{},
	}
	for i, a := range x.axes {
		for j, n := range a.names {
			c.names = append(c.names, n)
			c.values[n] = a.rows[x.idx[i]].values[j]
		}
	}
	x.next++
	odometer(x.idx, x.axes)
	return c, true
}

func (x *Expansion) id(idx []int) string {
	ss := make([]string, len(idx))
	for i, j := range idx {
		ss[i] = x.ids[i][j]
	}
	return strings.Join(ss, "-")
}

// odometer advances given row indices to the next combination; the
// last axis turns fastest.
func odometer(idx []int, axes []*Axis) {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < len(axes[i].rows) {
			return
		}
		idx[i] = 0
	}
}

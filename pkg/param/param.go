// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package param declares the parameter axes a case is repeated over and
// expands them into combinations, one per invocation:
//
//	axis := param.New("a, b, expected",
//	    param.V(1, 2, 3),
//	    param.V(0, 0, 0).ID("zeros"),
//	    param.V(-1, 1, 0),
//	)
//	xp, err := param.Expand(axis)
//	for c, ok := xp.Next(); ok; c, ok = xp.Next() {
//	    _ = c.ID // "1-2-3", "zeros", "-1-1-0"
//	}
//
// Several axes combine to their Cartesian product whereas the first
// declared axis is the outer loop.
package param

import (
	"fmt"
	"strings"
)

// Row is one value tuple of an axis optionally paired with a display
// id.
type Row struct {
	values []interface{}
	id     string
}

// V returns a row of given values.
func V(values ...interface{}) Row {
	return Row{values: append([]interface{}(nil), values...)}
}

// ID returns a copy of receiving row with given display id.
func (r Row) ID(id string) Row {
	r.id = id
	return r
}

// Values returns a copy of a row's values.
func (r Row) Values() []interface{} {
	return append([]interface{}(nil), r.values...)
}

// Axis is one declared dimension of parameter values: a tuple of names
// and an ordered list of rows whose width must equal the number of
// names.  An axis is read-only once it was expanded.
type Axis struct {
	names []string
	rows  []Row
}

// New returns an axis with given names, e.g. "number" or "a, b,
// expected", and rows.
func New(names string, rows ...Row) *Axis {
	nn := []string{}
	for _, n := range strings.Split(names, ",") {
		nn = append(nn, strings.TrimSpace(n))
	}
	return &Axis{names: nn, rows: append([]Row(nil), rows...)}
}

// Values returns an axis with one name whose rows hold one of given
// values each.
func Values(name string, values ...interface{}) *Axis {
	a := &Axis{names: []string{strings.TrimSpace(name)}}
	for _, v := range values {
		a.rows = append(a.rows, V(v))
	}
	return a
}

// IDs assigns given display ids to the rows of receiving axis in order.
// Surplus ids are ignored, missing ids leave their rows unchanged.
func (a *Axis) IDs(ids ...string) *Axis {
	for i, id := range ids {
		if i >= len(a.rows) {
			break
		}
		a.rows[i] = a.rows[i].ID(id)
	}
	return a
}

// Names returns a copy of the names of an axis.
func (a *Axis) Names() []string { return append([]string(nil), a.names...) }

// Len returns the number of rows of an axis.
func (a *Axis) Len() int { return len(a.rows) }

func (a *Axis) String() string { return strings.Join(a.names, ",") }

// validate returns a construction error if an axis has no or empty
// names or a row whose width differs from the axis' arity.
func (a *Axis) validate() error {
	for _, n := range a.names {
		if n == "" {
			return constructionf(a, "empty parameter name")
		}
	}
	for i, r := range a.rows {
		if len(r.values) != len(a.names) {
			return constructionf(a,
				"row %d has %d values for %d names",
				i, len(r.values), len(a.names))
		}
	}
	return nil
}

// ids returns the display ids of an axis' rows: an explicit id, else
// the stable stringification of its scalar values, else the axis' first
// name suffixed by the row index.  Generated ids which collide with an
// other id are suffixed by their row index, or by the first free index
// past the row count if that id is taken too.  Colliding explicit ids
// are a construction error.
func (a *Axis) ids() ([]string, error) {
	ids, explicit := make([]string, len(a.rows)), map[string]int{}
	for i, r := range a.rows {
		if r.id == "" {
			continue
		}
		if j, ok := explicit[r.id]; ok {
			return nil, constructionf(a,
				"rows %d and %d share the id %q", j, i, r.id)
		}
		explicit[r.id], ids[i] = i, r.id
	}
	generated := map[string]int{}
	for i, r := range a.rows {
		if r.id != "" {
			continue
		}
		id, ok := stringify(r.values)
		if !ok {
			id = fmt.Sprintf("%s%d", a.names[0], i)
		}
		generated[id]++
		ids[i] = id
	}
	clash := func(i int) bool {
		_, ok := explicit[ids[i]]
		return ok || generated[ids[i]] > 1
	}
	taken := map[string]bool{}
	for i, r := range a.rows {
		if r.id != "" || !clash(i) {
			taken[ids[i]] = true
		}
	}
	// a taken suffix is bumped past the row count
	for i, r := range a.rows {
		if r.id != "" || !clash(i) {
			continue
		}
		id := fmt.Sprintf("%s#%d", ids[i], i)
		for n := len(a.rows); taken[id]; n++ {
			id = fmt.Sprintf("%s#%d", ids[i], n)
		}
		ids[i], taken[id] = id, true
	}
	return ids, nil
}

// stringify joins the string representations of given values with "-"
// if all of them are scalars, i.e. have a stable representation.
func stringify(values []interface{}) (string, bool) {
	ss := []string{}
	for _, v := range values {
		switch v := v.(type) {
		case nil:
			ss = append(ss, "nil")
		case string:
			if v == "" {
				v = `""`
			}
			ss = append(ss, v)
		case bool, int, int8, int16, int32, int64, uint, uint8, uint16,
			uint32, uint64, float32, float64:
			ss = append(ss, fmt.Sprint(v))
		default:
			return "", false
		}
	}
	return strings.Join(ss, "-"), true
}

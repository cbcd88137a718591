// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package assert_test

import (
	"math"
	"testing"

	"github.com/slukits/gocase"
	"github.com/slukits/gocase/pkg/assert"
)

type approx struct{ gocase.Suite }

func (s *approx) SetUp(t *gocase.T) { t.Parallel() }

func (s *approx) Accepts_floating_point_drift(t *gocase.T) {
	a, b := 0.1, 0.2
	t.False(a+b == 0.3)
	t.True(assert.ApproxEqual(a+b, 0.3))
	t.Nil(assert.Catch(func() { assert.Approx(a+b, 0.3) }))
}

func (s *approx) Compares_any_numeric_kinds(t *gocase.T) {
	t.True(assert.ApproxEqual(3, 3.0000001))
	t.True(assert.ApproxEqual(int8(2), uint64(2)))
	t.True(assert.ApproxEqual(float32(0.5), 0.5))
}

func (s *approx) Rejects_values_beyond_the_tolerance(t *gocase.T) {
	t.False(assert.ApproxEqual(1.001, 1.0))
	fl := assert.Catch(func() { assert.Approx(1.001, 1.0) })
	t.NotNil(fl)
	t.Contains(fl.Message, "assert approx:")
}

func (s *approx) Compares_slices_element_wise(t *gocase.T) {
	a, b := 0.1, 0.2
	t.True(assert.ApproxEqual([]float64{a + b, 0.6}, []float64{0.3, 0.6}))
	t.True(assert.ApproxEqual([2]float64{a + b, 1}, []float64{0.3, 1}))
	t.False(assert.ApproxEqual([]float64{0.3, 0.7}, []float64{0.3, 0.6}))
}

func (s *approx) Compares_maps_key_wise(t *gocase.T) {
	a, b := 0.1, 0.2
	t.True(assert.ApproxEqual(
		map[string]float64{"x": a + b}, map[string]float64{"x": 0.3}))
	t.True(assert.ApproxEqual(
		map[string]interface{}{"x": []interface{}{a + b}, "y": "go"},
		map[string]interface{}{"x": []float64{0.3}, "y": "go"},
	))
}

func (s *approx) Reports_length_and_key_mismatches_as_unequal(
	t *gocase.T,
) {
	t.False(assert.ApproxEqual([]float64{1, 2}, []float64{1}))
	t.False(assert.ApproxEqual(
		map[string]float64{"x": 1}, map[string]float64{"y": 1}))
	t.False(assert.ApproxEqual(
		map[string]float64{"x": 1}, map[string]float64{"x": 1, "y": 1}))
}

func (s *approx) Never_equals_nan(t *gocase.T) {
	t.False(assert.ApproxEqual(math.NaN(), math.NaN()))
	t.True(assert.ApproxEqual(math.Inf(1), math.Inf(1)))
	t.False(assert.ApproxEqual(math.Inf(1), math.MaxFloat64))
}

func (s *approx) Applies_the_relative_tolerance(t *gocase.T) {
	t.True(assert.ApproxEqual(100.5, 100.0, assert.Rel(0.01)))
	t.False(assert.ApproxEqual(102.0, 100.0, assert.Rel(0.01)))
}

func (s *approx) Ignores_the_relative_tolerance_given_only_abs(
	t *gocase.T,
) {
	t.True(assert.ApproxEqual(1e6+0.5, 1e6))
	t.False(assert.ApproxEqual(1e6+0.5, 1e6, assert.Abs(0.1)))
	t.True(assert.ApproxEqual(1e6+0.05, 1e6, assert.Abs(0.1)))
	t.Eq(assert.NewTolerance(assert.Abs(0.1)),
		assert.Tolerance{Rel: 0, Abs: 0.1})
}

func (s *approx) Keeps_the_default_abs_given_only_rel(t *gocase.T) {
	t.True(assert.ApproxEqual(1e-13, 0.0, assert.Rel(0.5)))
	t.Eq(assert.NewTolerance(assert.Rel(0.5)),
		assert.Tolerance{Rel: 0.5, Abs: assert.DefaultAbs})
}

func (s *approx) Defaults_to_the_default_tolerance(t *gocase.T) {
	t.Eq(assert.NewTolerance(), assert.DefaultTolerance)
	t.Eq(assert.NewTolerance(assert.With(assert.Tolerance{Rel: 1})),
		assert.Tolerance{Rel: 1})
}

func TestApprox(t *testing.T) {
	t.Parallel()
	gocase.Run(&approx{}, t)
}

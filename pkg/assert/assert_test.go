// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package assert_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/slukits/gocase"
	"github.com/slukits/gocase/pkg/assert"
)

type that struct{ gocase.Suite }

func (s *that) SetUp(t *gocase.T) { t.Parallel() }

func (s *that) Passes_a_true_condition(t *gocase.T) {
	t.Nil(assert.Catch(func() { assert.That(1+2 == 3) }))
}

func (s *that) Fails_with_the_condition_s_source_by_default(t *gocase.T) {
	a, b := 0.1, 0.2
	fl := assert.Catch(func() { assert.That(a+b == 0.3) })
	t.NotNil(fl)
	t.Eq(fl.Message, "assert: a+b == 0.3")
}

func (s *that) Fails_with_given_message(t *gocase.T) {
	fl := assert.Catch(func() { assert.That(false, "want %d", 42) })
	t.NotNil(fl)
	t.Eq(fl.Message, "want 42")
}

func (s *that) Uses_the_callers_line_for_wrappers(t *gocase.T) {
	value := 3
	fl := assert.Catch(func() { checker{}.True(value > 5) })
	t.NotNil(fl)
	t.Eq(fl.Message, "assert: value > 5")
}

type checker struct{}

func (checker) True(cond bool) { assert.ThatSkip(1, cond) }

func TestThat(t *testing.T) {
	t.Parallel()
	gocase.Run(&that{}, t)
}

type eq struct{ gocase.Suite }

func (s *eq) SetUp(t *gocase.T) { t.Parallel() }

func (s *eq) Passes_deeply_equal_values(t *gocase.T) {
	t.Nil(assert.Catch(func() {
		assert.Eq([]int{1, 2, 3}, []int{1, 2, 3})
		assert.Eq(map[string]int{"a": 1}, map[string]int{"a": 1})
	}))
}

func (s *eq) Fails_values_of_different_types(t *gocase.T) {
	fl := assert.Catch(func() { assert.Eq(1, int64(1)) })
	t.NotNil(fl)
	t.Contains(fl.Message, "types mismatch int != int64")
}

func (s *eq) Fails_with_a_diff_of_unequal_values(t *gocase.T) {
	fl := assert.Catch(func() { assert.Eq([]int{1, 2}, []int{1, 3}) })
	t.NotNil(fl)
	t.Contains(fl.Message, "assert equal:")
	t.Contains(fl.Message, "-")
	t.Contains(fl.Message, "+")
}

func (s *eq) Diffs_structs_with_unexported_fields(t *gocase.T) {
	type opaque struct{ v int }
	fl := assert.Catch(func() { assert.Eq(opaque{1}, opaque{2}) })
	t.NotNil(fl)
	t.Contains(fl.Message, "{1}")
}

func (s *eq) Not_eq_fails_equal_values(t *gocase.T) {
	t.Nil(assert.Catch(func() { assert.NotEq(1, int64(1)) }))
	t.NotNil(assert.Catch(func() { assert.NotEq("a", "a") }))
}

func TestEq(t *testing.T) {
	t.Parallel()
	gocase.Run(&eq{}, t)
}

type containment struct{ gocase.Suite }

func (s *containment) SetUp(t *gocase.T) { t.Parallel() }

func (s *containment) Finds_sub_strings(t *gocase.T) {
	t.Nil(assert.Catch(func() {
		assert.Contains("hello world", "world")
		assert.Contains(errors.New("invalid syntax"), "invalid")
		assert.NotContains("hello", "x")
	}))
	fl := assert.Catch(func() { assert.Contains("hello", "x") })
	t.NotNil(fl)
	t.Contains(fl.Message, "hello doesn't contain x")
}

func (s *containment) Finds_elements_of_slices_and_arrays(t *gocase.T) {
	t.Nil(assert.Catch(func() {
		assert.Contains([]int{1, 2, 3}, 2)
		assert.Contains([2]string{"a", "b"}, "b")
		assert.NotContains([]int{1, 2, 3}, 4)
	}))
	t.NotNil(assert.Catch(func() { assert.NotContains([]int{1, 2}, 1) }))
}

func (s *containment) Finds_keys_of_maps(t *gocase.T) {
	t.Nil(assert.Catch(func() {
		assert.Contains(map[string]int{"name": 1}, "name")
		assert.NotContains(map[string]int{"name": 1}, 1)
	}))
}

func TestContainment(t *testing.T) {
	t.Parallel()
	gocase.Run(&containment{}, t)
}

type values struct{ gocase.Suite }

func (s *values) SetUp(t *gocase.T) { t.Parallel() }

func (s *values) Nil_accepts_nil_and_nil_pointers(t *gocase.T) {
	var p *int
	var m map[string]int
	t.Nil(assert.Catch(func() {
		assert.Nil(nil)
		assert.Nil(p)
		assert.Nil(m)
		assert.NotNil(1)
	}))
	t.NotNil(assert.Catch(func() { assert.Nil(0) }))
	t.NotNil(assert.Catch(func() { assert.NotNil(p) }))
}

func (s *values) Len_compares_lengths(t *gocase.T) {
	t.Nil(assert.Catch(func() {
		assert.Len([]int{1, 2}, 2)
		assert.Len("abc", 3)
		assert.Len(map[int]int{}, 0)
	}))
	fl := assert.Catch(func() { assert.Len([]int{1}, 2) })
	t.NotNil(fl)
	t.Contains(fl.Message, fmt.Sprintf(assert.LenErr, 2, 1))
	t.NotNil(assert.Catch(func() { assert.Len(1, 1) }))
}

func (s *values) Truthiness_follows_emptiness(t *gocase.T) {
	for _, v := range []interface{}{
		nil, false, 0, 0.0, "", []int{}, map[int]int{}, struct{}{},
	} {
		t.False(assert.IsTruthy(v), fmt.Sprintf("%#v is truthy", v))
	}
	for _, v := range []interface{}{true, 1, -0.5, "a", []int{0}} {
		t.True(assert.IsTruthy(v), fmt.Sprintf("%#v is falsy", v))
	}
	t.NotNil(assert.Catch(func() { assert.Truthy([]int{}) }))
	t.NotNil(assert.Catch(func() { assert.Falsy("a") }))
}

func (s *values) Matched_matches_string_representations(t *gocase.T) {
	t.Nil(assert.Catch(func() { assert.Matched(42, `^\d+$`) }))
	t.NotNil(assert.Catch(func() { assert.Matched("a42", `^\d+$`) }))
}

func (s *values) Err_is_finds_wrapped_targets(t *gocase.T) {
	target := errors.New("target")
	t.Nil(assert.Catch(func() {
		assert.ErrIs(fmt.Errorf("wrapped: %w", target), target)
	}))
	t.NotNil(assert.Catch(func() {
		assert.ErrIs(errors.New("other"), target)
	}))
}

func (s *values) Fail_raises_given_message(t *gocase.T) {
	fl := assert.Catch(func() { assert.Failf("%s-%d", "a", 1) })
	t.NotNil(fl)
	t.Eq(fl.Error(), "a-1")
}

func TestValues(t *testing.T) {
	t.Parallel()
	gocase.Run(&values{}, t)
}

type catch struct{ gocase.Suite }

func (s *catch) Returns_nil_if_nothing_is_raised(t *gocase.T) {
	t.Nil(assert.Catch(func() {}))
}

func (s *catch) Re_panics_other_values(t *gocase.T) {
	r := t.Raises(assert.As[*assert.PanicError](), func() error {
		assert.Catch(func() { panic("other") })
		return nil
	})
	t.Eq(r.Message, "panic: other")
}

func TestCatch(t *testing.T) {
	t.Parallel()
	gocase.Run(&catch{}, t)
}

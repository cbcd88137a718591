// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package assert_test

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"testing"

	"github.com/slukits/gocase"
	"github.com/slukits/gocase/pkg/assert"
)

type raises struct{ gocase.Suite }

func (s *raises) SetUp(t *gocase.T) { t.Parallel() }

func atoi(s string) func() error {
	return func() error {
		_, err := strconv.Atoi(s)
		return err
	}
}

func (s *raises) Captures_a_matching_error(t *gocase.T) {
	r := assert.Raises(assert.As[*strconv.NumError](), atoi("hello"))
	t.Eq(r.Kind, "*strconv.NumError")
	t.Contains(r.Message, "invalid")
	t.ErrIs(r.Err, strconv.ErrSyntax)
}

func (s *raises) Fails_if_nothing_is_raised(t *gocase.T) {
	fl := assert.Catch(func() {
		assert.Raises(assert.As[*strconv.NumError](), atoi("42"))
	})
	t.NotNil(fl)
	t.Contains(fl.Message,
		fmt.Sprintf(assert.NoneRaisedErr, "*strconv.NumError"))
}

func (s *raises) Fails_an_other_kind_with_the_error_as_cause(t *gocase.T) {
	fl := assert.Catch(func() {
		assert.Raises(assert.As[*strconv.NumError](), func() error {
			return os.ErrNotExist
		})
	})
	t.NotNil(fl)
	t.Contains(fl.Message, fmt.Sprintf(assert.OtherKindErr,
		"*strconv.NumError", "*errors.errorString"))
	t.ErrIs(fl, os.ErrNotExist)
	t.Eq(fl.Captured, os.ErrNotExist.Error())
}

func (s *raises) Captures_panics(t *gocase.T) {
	r := assert.Raises(assert.As[runtime.Error](), func() error {
		var v interface{} = "text"
		_ = v.(int) + 123
		return nil
	})
	t.Contains(r.Kind, "TypeAssertionError")

	r = assert.Raises(assert.As[*assert.PanicError](), func() error {
		panic("boom")
	})
	t.Eq(r.Message, "panic: boom")
}

func (s *raises) Fails_a_panic_of_an_other_kind(t *gocase.T) {
	fl := assert.Catch(func() {
		assert.Raises(assert.As[*runtime.TypeAssertionError](),
			func() error {
				ii, i := []int{1, 2, 3}, 10
				_ = ii[i]
				return nil
			})
	})
	t.NotNil(fl)
	t.Contains(fl.Captured, "index out of range")
}

func (s *raises) Fails_if_the_pattern_doesnt_match(t *gocase.T) {
	r := assert.RaisesMatch(assert.Is(strconv.ErrSyntax), "invalid",
		atoi("hello"))
	t.Contains(r.Message, "hello")

	fl := assert.Catch(func() {
		assert.RaisesMatch(assert.Any(), "^nope$", func() error {
			return errors.New("boom")
		})
	})
	t.NotNil(fl)
	t.Contains(fl.Message, `pattern "^nope$" doesn't match message "boom"`)
}

func (s *raises) Passes_assertion_failures_on(t *gocase.T) {
	fl := assert.Catch(func() {
		assert.Raises(assert.Any(), func() error {
			assert.Fail("inner")
			return nil
		})
	})
	t.NotNil(fl)
	t.Eq(fl.Message, "inner")
}

func (s *raises) Captures_assertion_failures_if_asked_to(t *gocase.T) {
	r := assert.Raises(assert.As[*assert.Failure](), func() error {
		assert.Fail("inner")
		return nil
	})
	t.Eq(r.Message, "inner")
}

func (s *raises) Names_kinds_by_their_type(t *gocase.T) {
	t.Eq(assert.As[*strconv.NumError]().String(), "*strconv.NumError")
	t.Eq(assert.Any().String(), "any error")
	t.Eq(assert.Is(strconv.ErrSyntax).String(), `"invalid syntax"`)
	t.Eq(assert.KindOf(strconv.ErrRange), "*errors.errorString")
}

func TestRaises(t *testing.T) {
	t.Parallel()
	gocase.Run(&raises{}, t)
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tutorial

import (
	"runtime"
	"strconv"

	"github.com/slukits/gocase"
	"github.com/slukits/gocase/pkg/assert"
)

// Exception returns the lesson on expected failures: matching an
// error's kind, inspecting the captured error and matching its message.
func Exception(oo ...gocase.Option) *gocase.Registry {
	return mustAdd(gocase.NewRegistry(oo...),
		gocase.Case{Name: "raises_basic", Body: func(t *gocase.T) {
			t.Raises(assert.As[runtime.Error](), func() error {
				zero := 0
				_ = 1 / zero
				return nil
			})
		}},
		gocase.Case{Name: "raises_common_errors", Body: func(t *gocase.T) {
			t.Raises(assert.As[*strconv.NumError](), func() error {
				_, err := strconv.Atoi("hello")
				return err
			})
			t.Raises(assert.As[*KeyError](), func() error {
				_, err := Lookup(map[string]int{"a": 1}, "b")
				return err
			})
			t.Raises(assert.As[*runtime.TypeAssertionError](),
				func() error {
					var v interface{} = "hello"
					_ = v.(int) + 123
					return nil
				})
			t.Raises(assert.As[runtime.Error](), func() error {
				ii, i := []int{1, 2, 3}, 10
				_ = ii[i]
				return nil
			})
		}},
		gocase.Case{Name: "error_info", Body: func(t *gocase.T) {
			raised := t.Raises(assert.As[*strconv.NumError](),
				func() error {
					_, err := strconv.Atoi("hello")
					return err
				})
			t.Eq(raised.Kind, "*strconv.NumError")
			t.Contains(raised.Message, "invalid syntax")
		}},
		gocase.Case{Name: "match_parameter", Body: func(t *gocase.T) {
			t.RaisesMatch(assert.Is(strconv.ErrSyntax), "invalid",
				func() error {
					_, err := strconv.Atoi("hello")
					return err
				})
		}},
		gocase.Case{Name: "sentinel_errors", Body: func(t *gocase.T) {
			t.RaisesMatch(assert.Is(ErrUsernameChar), `'!'`,
				func() error { return ValidateUsername("bob!") })
		}},
	)
}

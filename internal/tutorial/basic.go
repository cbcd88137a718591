// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tutorial

import (
	"strings"

	"github.com/slukits/gocase"
	"github.com/slukits/gocase/pkg/assert"
)

// BasicAssert returns the lesson on plain assertions: equality,
// membership, nil-ness, comparisons, truthiness and approximate
// equality of floats.
func BasicAssert(oo ...gocase.Option) *gocase.Registry {
	return mustAdd(gocase.NewRegistry(oo...),
		gocase.Case{Name: "equal", Body: func(t *gocase.T) {
			result := 1 + 1
			t.True(result == 2)
		}},
		gocase.Case{Name: "not_equal", Body: func(t *gocase.T) {
			result := 1 + 1
			t.True(result != 3)
		}},
		gocase.Case{Name: "contains", Body: func(t *gocase.T) {
			fruits := []string{"apple", "banana", "cherry"}
			t.Contains(fruits, "apple")
			t.NotContains(fruits, "grape")
		}},
		gocase.Case{Name: "is_nil", Body: func(t *gocase.T) {
			var result *string
			t.Nil(result)
		}},
		gocase.Case{Name: "is_not_nil", Body: func(t *gocase.T) {
			result := "something"
			t.NotNil(&result)
		}},
		gocase.Case{Name: "is_true_false", Body: func(t *gocase.T) {
			success, failed := true, false
			t.True(success)
			t.False(failed)
		}},
		gocase.Case{Name: "number_comparison", Body: func(t *gocase.T) {
			value := 10
			t.True(value > 5)
			t.True(value < 20)
			t.True(value >= 10)
			t.True(value <= 10)
		}},
		gocase.Case{Name: "number_range", Body: func(t *gocase.T) {
			score := 85
			t.True(0 <= score && score <= 100)
		}},
		gocase.Case{Name: "string_contains", Body: func(t *gocase.T) {
			message := "hello world"
			t.Contains(message, "world")
			t.NotContains(message, "python")
		}},
		gocase.Case{Name: "string_prefix_suffix", Body: func(t *gocase.T) {
			filename := "report_2024.pdf"
			t.True(strings.HasPrefix(filename, "report"))
			t.True(strings.HasSuffix(filename, ".pdf"))
		}},
		gocase.Case{Name: "slice_equal", Body: func(t *gocase.T) {
			result := []int{1, 2, 3}
			t.Eq(result, []int{1, 2, 3})
			t.NotEq(result, []int{3, 2, 1})
		}},
		gocase.Case{Name: "slice_length", Body: func(t *gocase.T) {
			t.Len([]int{1, 2, 3, 4, 5}, 5)
		}},
		gocase.Case{Name: "map_equal", Body: func(t *gocase.T) {
			user := map[string]interface{}{"name": "Alice", "age": 30}
			t.Eq(user, map[string]interface{}{"name": "Alice", "age": 30})
		}},
		gocase.Case{Name: "map_key_exists", Body: func(t *gocase.T) {
			config := map[string]interface{}{
				"host": "localhost", "port": 8080}
			t.Contains(config, "host")
			t.NotContains(config, "password")
		}},
		gocase.Case{Name: "map_value", Body: func(t *gocase.T) {
			user := map[string]interface{}{"name": "Alice", "age": 30}
			t.Eq(user["name"], "Alice")
			t.Eq(user["age"], 30)
		}},
		gocase.Case{Name: "truthy_falsy", Body: func(t *gocase.T) {
			for _, v := range []interface{}{
				"", []int{}, map[string]int{}, 0} {
				t.Falsy(v)
			}
			for _, v := range []interface{}{
				"hello", []int{1, 2, 3}, map[string]int{"a": 1}, 42} {
				t.Truthy(v)
			}
		}},
		gocase.Case{Name: "equality_not_identity", Body: func(t *gocase.T) {
			list1, list2 := []int{1, 2, 3}, []int{1, 2, 3}
			t.True(&list1 != &list2)
			t.Eq(list1, list2)
		}},
		gocase.Case{Name: "float_with_approx", Body: func(t *gocase.T) {
			a, b := 0.1, 0.2
			result := a + b // 0.30000000000000004
			t.False(result == 0.3)
			t.Approx(result, 0.3)
		}},
		gocase.Case{Name: "assert_message", Body: func(t *gocase.T) {
			value := 42
			t.True(value > 0, "value must be positive; got: %d", value)
		}},
		gocase.Case{Name: "approx_tolerance", Body: func(t *gocase.T) {
			t.Approx(99.5, 100.0, assert.Rel(0.01))
			t.Approx(99.5, 100.0, assert.Abs(0.5))
		}},
		gocase.Case{Name: "approx_collection", Body: func(t *gocase.T) {
			a, b := 0.1, 0.2
			t.Approx([]float64{a + a, a + b}, []float64{0.2, 0.3})
			t.Approx(map[string]float64{"x": a + b},
				map[string]float64{"x": 0.3})
		}},
	)
}

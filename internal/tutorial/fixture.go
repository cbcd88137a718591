// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tutorial

import (
	"os"

	"github.com/slukits/gocase"
	"github.com/slukits/gocase/pkg/fixture"
)

// Resource is the value of the tutorial's scoped fixtures.  Its cleanup
// flips Released.
type Resource struct {
	Status   string
	Items    []string
	Released bool
}

// Fixtures returns the definitions of the fixture lesson's fixtures.
// Each call returns new definitions.  released is called with every
// resource whose cleanup ran; it may be nil.
func Fixtures(released func(*Resource)) []*fixture.Definition {
	sum := func(ii []int) int {
		s := 0
		for _, i := range ii {
			s += i
		}
		return s
	}
	return []*fixture.Definition{
		fixture.Value("sample_list", func() interface{} {
			return []int{1, 2, 3, 4, 5}
		}),
		fixture.Value("sample_map", func() interface{} {
			return map[string]interface{}{"name": "go", "version": 1}
		}),
		fixture.Value("empty_list", func() interface{} { return []int{} }),
		fixture.NewSimple("doubled_list",
			func(vv fixture.Values) (interface{}, error) {
				dd := []int{}
				for _, i := range vv.Get("sample_list").([]int) {
					dd = append(dd, 2*i)
				}
				return dd, nil
			}, "sample_list"),
		fixture.NewSimple("list_with_sum",
			func(vv fixture.Values) (interface{}, error) {
				ii := vv.Get("sample_list").([]int)
				return map[string]interface{}{
					"items": ii, "total": sum(ii)}, nil
			}, "sample_list"),
		fixture.NewScoped("resource_with_cleanup",
			func(fixture.Values) (interface{}, fixture.Cleanup, error) {
				r := &Resource{Status: "created", Items: []string{}}
				return r, func() error {
					r.Items, r.Released = nil, true
					if released != nil {
						released(r)
					}
					return nil
				}, nil
			}),
		fixture.TempDir("temp_dir"),
		fixture.Value("user_data", func() interface{} {
			return map[string]interface{}{"id": 1, "name": "Gopher",
				"email": "gopher@example.com", "active": true}
		}),
		fixture.Value("shopping_cart", func() interface{} {
			return &Cart{}
		}),
		fixture.NewSimple("cart_with_items",
			func(vv fixture.Values) (interface{}, error) {
				c := vv.Get("shopping_cart").(*Cart)
				c.Add("apple", 1000, 3)
				c.Add("banana", 500, 5)
				return c, nil
			}, "shopping_cart"),
	}
}

// Cart is the shopping cart of the fixture lesson.
type Cart struct {
	Items []CartItem
	Total int
}

// CartItem is a position of a Cart.
type CartItem struct {
	Name       string
	Price, Qty int
}

// Add adds a position to a cart and updates its total.
func (c *Cart) Add(name string, price, qty int) {
	c.Items = append(c.Items, CartItem{Name: name, Price: price, Qty: qty})
	c.Total += price * qty
}

// Fixture returns the lesson on fixtures: injection, freshness,
// dependent fixtures and scoped fixtures with cleanup.
func Fixture(oo ...gocase.Option) *gocase.Registry {
	r := gocase.NewRegistry(oo...)
	for _, d := range Fixtures(nil) {
		if err := r.Fixture(d); err != nil {
			panic(err)
		}
	}
	return mustAdd(r,
		gocase.Case{
			Name:     "fixture_injection",
			Fixtures: []string{"sample_list"},
			Body: func(t *gocase.T) {
				t.Eq(gocase.Get[[]int](t, "sample_list"), []int{1, 2, 3, 4, 5})
				t.Len(t.Fixture("sample_list"), 5)
			},
		},
		gocase.Case{
			Name:     "fixture_provides_fresh_data",
			Fixtures: []string{"sample_list"},
			Body: func(t *gocase.T) {
				ll := append(gocase.Get[[]int](t, "sample_list"), 6)
				t.Len(ll, 6)
			},
		},
		gocase.Case{
			Name:     "fixture_still_fresh",
			Fixtures: []string{"sample_list"},
			Body: func(t *gocase.T) {
				t.Eq(gocase.Get[[]int](t, "sample_list"), []int{1, 2, 3, 4, 5})
				t.NotContains(t.Fixture("sample_list"), 6)
			},
		},
		gocase.Case{
			Name:     "multiple_fixtures",
			Fixtures: []string{"sample_list", "sample_map", "empty_list"},
			Body: func(t *gocase.T) {
				t.Len(t.Fixture("sample_list"), 5)
				t.Eq(gocase.Get[map[string]interface{}](t, "sample_map")["name"],
					"go")
				t.Falsy(t.Fixture("empty_list"))
			},
		},
		gocase.Case{
			Name:     "dependent_fixture",
			Fixtures: []string{"doubled_list"},
			Body: func(t *gocase.T) {
				t.Eq(gocase.Get[[]int](t, "doubled_list"), []int{2, 4, 6, 8, 10})
			},
		},
		gocase.Case{
			Name:     "fixture_with_computed_value",
			Fixtures: []string{"list_with_sum"},
			Body: func(t *gocase.T) {
				ls := gocase.Get[map[string]interface{}](t, "list_with_sum")
				t.Eq(ls["items"], []int{1, 2, 3, 4, 5})
				t.Eq(ls["total"], 15)
			},
		},
		gocase.Case{
			Name:     "resource_is_ready",
			Fixtures: []string{"resource_with_cleanup"},
			Body: func(t *gocase.T) {
				r := gocase.Get[*Resource](t, "resource_with_cleanup")
				t.Eq(r.Status, "created")
				r.Items = append(r.Items, "test_item")
			},
		},
		gocase.Case{
			Name:     "cleanup_runs_after",
			Fixtures: []string{"resource_with_cleanup"},
			Body: func(t *gocase.T) {
				r := gocase.Get[*Resource](t, "resource_with_cleanup")
				t.Len(r.Items, 0)
				t.False(r.Released)
			},
		},
		gocase.Case{
			Name:     "temp_dir_available",
			Fixtures: []string{"temp_dir"},
			Body: func(t *gocase.T) {
				info, err := os.Stat(gocase.Get[string](t, "temp_dir"))
				t.FatalOn(err)
				t.True(info.IsDir())
			},
		},
		gocase.Case{
			Name:     "user_is_active",
			Fixtures: []string{"user_data"},
			Body: func(t *gocase.T) {
				u := gocase.Get[map[string]interface{}](t, "user_data")
				t.Eq(u["active"], true)
				t.Contains(u["email"], "@")
			},
		},
		gocase.Case{
			Name:     "empty_cart",
			Fixtures: []string{"shopping_cart"},
			Body: func(t *gocase.T) {
				c := gocase.Get[*Cart](t, "shopping_cart")
				t.Len(c.Items, 0)
				t.Eq(c.Total, 0)
			},
		},
		gocase.Case{
			Name:     "cart_total",
			Fixtures: []string{"cart_with_items"},
			Body: func(t *gocase.T) {
				c := gocase.Get[*Cart](t, "cart_with_items")
				t.Len(c.Items, 2)
				t.Eq(c.Total, 5500)
			},
		},
	)
}

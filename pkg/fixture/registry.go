// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixture

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/slukits/gocase/pkg/errs"
)

// Registry holds fixture definitions forming a dependency graph.  The
// registry must not be modified while it resolves fixtures.
type Registry struct {
	defs  map[string]*Definition
	order []string // names in order of addition
}

// NewRegistry returns a new and empty fixture registry.
func NewRegistry() *Registry {
	return &Registry{defs: map[string]*Definition{}}
}

// Add adds given definition to the registry.  A definition without name
// or provider and a name which is already registered are construction
// errors.  Dependencies are validated by Plan since they may be added
// later.
func (r *Registry) Add(d *Definition) error {
	if d == nil || d.Name == "" {
		return errs.Constructionf("fixture", "", "missing name")
	}
	if d.provide == nil {
		return errs.Constructionf("fixture", d.Name, "missing provider")
	}
	if _, ok := r.defs[d.Name]; ok {
		return errs.Constructionf("fixture", d.Name, "already registered")
	}
	r.defs[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Has returns true iff a fixture with given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Names returns the names of the registered fixtures in order of their
// addition.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

const (
	white = iota // unvisited
	grey         // on the current path
	black        // planned
)

// Plan returns the names of given required fixtures and all their
// transitive dependencies in instantiation order, i.e. a fixture comes
// after all its dependencies.  The order is deterministic: required
// names and dependencies are visited in declaration order.  An unknown
// fixture name and a dependency cycle are construction errors.
func (r *Registry) Plan(required ...string) ([]string, error) {
	plan, color := []string{}, map[string]int{}
	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch color[name] {
		case black:
			return nil
		case grey:
			cycle := append(path[slices.Index(path, name):], name)
			return errs.Constructionf("fixture", name,
				"dependency cycle %s", strings.Join(cycle, " -> "))
		}
		d, ok := r.defs[name]
		if !ok {
			if len(path) == 0 {
				return errs.Constructionf("fixture", name, "unknown")
			}
			return errs.Constructionf("fixture", path[len(path)-1],
				"unknown dependency %q", name)
		}
		color[name] = grey
		path = append(path, name)
		for _, dep := range d.Deps {
			if err := visit(dep, path); err != nil {
				return err
			}
		}
		color[name] = black
		plan = append(plan, name)
		return nil
	}
	for _, name := range required {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// Validate checks the whole graph of registered fixtures for unknown
// dependencies and cycles.
func (r *Registry) Validate() error {
	_, err := r.Plan(r.order...)
	return err
}

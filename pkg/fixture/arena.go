// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixture

import "sync"

type key struct{ invocation, name string }

// Arena provides a concurrency save storage of fixture instances keyed
// by their invocation and fixture name.  An instance is only ever
// visible to the invocation it was created for.  The zero value is
// ready to use; an Arena must not be copied after its first use.
type Arena struct {
	mutex sync.Mutex
	ff    map[key]interface{}
}

// Set stores given fixture value for given invocation.
func (a *Arena) Set(invocation, name string, value interface{}) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	if a.ff == nil {
		a.ff = map[key]interface{}{}
	}
	a.ff[key{invocation, name}] = value
}

// Get returns the value stored for given invocation and fixture name
// and true; false if there is none.
func (a *Arena) Get(invocation, name string) (interface{}, bool) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	v, ok := a.ff[key{invocation, name}]
	return v, ok
}

// Release removes all values stored for given invocation.
func (a *Arena) Release(invocation string) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	for k := range a.ff {
		if k.invocation == invocation {
			delete(a.ff, k)
		}
	}
}

// Len returns the number of stored fixture values.
func (a *Arena) Len() int {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return len(a.ff)
}

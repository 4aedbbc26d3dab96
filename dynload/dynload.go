// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynload maps symbolic routine names to native function values for
// callers that resolve entry points by name, mirroring the registration step
// a dynamic loader performs once when a compiled module is attached.
//
// A Table starts with dynamic symbol lookup enabled, meaning names that were
// never registered may still be resolved through an installed fallback
// resolver. A module that wants to expose exactly its registered entry points
// and nothing else calls UseDynamicSymbols(false) after registering them.
package dynload

import (
	"fmt"
	"sort"
	"sync"
)

// Routine is a single registered entry point.
//
// Fn is deliberately untyped: the table stores heterogeneous native calling
// conventions, and a caller that resolved a Routine by name asserts Fn to the
// signature it expects. Arity records the declared number of positional
// arguments so that callers can reject a mismatched convention before
// asserting.
type Routine struct {
	Name  string
	Fn    any
	Arity int
}

// Table is a registry of named routines.
//
// Registration happens once, at module initialization; lookups may come from
// any goroutine afterward, so the table is guarded by a read-write lock.
type Table struct {
	mu       sync.RWMutex
	routines map[string]Routine
	dynamic  bool
	resolver func(name string) (Routine, bool)
}

// NewTable returns an empty table with dynamic symbol lookup enabled.
func NewTable() *Table {
	return &Table{
		routines: make(map[string]Routine),
		dynamic:  true,
	}
}

// Register adds r to the table. Registering two routines under the same name
// is a programmer error and panics.
func (t *Table) Register(r Routine) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, dup := t.routines[r.Name]; dup {
		panic(fmt.Sprintf("dynload: routine %q registered twice", r.Name))
	}
	t.routines[r.Name] = r
}

// Lookup resolves name to a registered routine. If the name was never
// registered and dynamic symbol lookup is enabled, the fallback resolver is
// consulted; otherwise the lookup fails.
func (t *Table) Lookup(name string) (Routine, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if r, ok := t.routines[name]; ok {
		return r, true
	}
	if t.dynamic && t.resolver != nil {
		return t.resolver(name)
	}
	return Routine{}, false
}

// UseDynamicSymbols controls whether Lookup may fall back to the resolver for
// names that were not explicitly registered. Tables allow it by default.
func (t *Table) UseDynamicSymbols(allow bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dynamic = allow
}

// SetResolver installs the fallback used for unregistered names when dynamic
// symbol lookup is enabled. A nil resolver removes the fallback.
func (t *Table) SetResolver(f func(name string) (Routine, bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resolver = f
}

// Names returns the names of all registered routines in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.routines))
	for name := range t.routines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the table the module's entry points are registered into, the
// analogue of the per-module registry a loader hands to an initialization
// hook.
var Default = NewTable()

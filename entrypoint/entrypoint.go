/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package entrypoint implements a process-wide catalog of named element
// providers, grouped by string keys. Packages announce their elements from
// init functions; resolvers drain a group on demand. Loading is deferred
// until a resolver asks, so announcing an element costs nothing when the
// group is never consumed.
package entrypoint

import (
	"sort"
	"sync"
)

// Loader produces the element behind an entry. It runs at consumption
// time, not at registration time.
type Loader func() (any, error)

// Entry is one announced element: a display name and its deferred loader.
type Entry struct {
	Name string
	Load Loader
}

// Provider enumerates the entries of a group. The package-level Entries
// function is the canonical Provider; manifests and tests supply others.
type Provider func(group string) []Entry

var (
	mu     sync.RWMutex
	groups = map[string][]Entry{}
)

// Register announces an element under a group. Duplicate names within a
// group are allowed here; resolvers apply their own conflict policy when
// they consume the group.
func Register(group, name string, loader Loader) {
	mu.Lock()
	defer mu.Unlock()
	groups[group] = append(groups[group], Entry{Name: name, Load: loader})
}

// Entries returns the entries announced under a group, in registration
// order. The returned slice is a copy.
func Entries(group string) []Entry {
	mu.RLock()
	defer mu.RUnlock()
	ents := groups[group]
	out := make([]Entry, len(ents))
	copy(out, ents)
	return out
}

// Groups returns the sorted names of all groups with at least one entry.
func Groups() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(groups))
	for g := range groups {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// Reset clears the catalog. For tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	groups = map[string][]Entry{}
}

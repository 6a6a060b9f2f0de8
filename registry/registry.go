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

// Package registry implements the two-map registry at the heart of resolv:
// canonical normalized names and synonyms, drawn from disjoint key
// namespaces enforced at registration time.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"dirpx.dev/resolv/apis"
	"dirpx.dev/resolv/norm"
)

// Hooks parameterize a Registry over its element type. Name is required;
// the others are optional.
type Hooks[E any] struct {
	// Name extracts the raw canonical name of an element.
	Name func(E) string
	// Synonyms extracts element-declared synonyms, unioned with the
	// explicitly passed ones during registration.
	Synonyms func(E) []string
	// Same reports element identity, used to skip re-registration of an
	// element that is already present (entry-point loading).
	Same func(a, b E) bool
}

// Registry maps normalized keys to elements. Registration is guarded by a
// write lock; lookups take the read lock, so concurrent reads are safe at
// any point and concurrent registration is safe but unordered.
type Registry[E any] struct {
	cfg   apis.Config
	hooks Hooks[E]

	mu sync.RWMutex
	// primary maps normalized canonical names to elements.
	primary map[string]E
	// synonyms maps additional normalized names to elements.
	synonyms map[string]E
	// synCanon remembers each synonym's canonical key, for reverse views.
	synCanon map[string]string
	// meta holds per-element structured metadata, keyed by primary key.
	meta map[string]map[string]any

	def    E
	hasDef bool
}

// New constructs an empty Registry for elements described by hooks,
// normalizing names according to cfg.
func New[E any](cfg apis.Config, hooks Hooks[E]) *Registry[E] {
	return &Registry[E]{
		cfg:      cfg,
		hooks:    hooks,
		primary:  make(map[string]E),
		synonyms: make(map[string]E),
		synCanon: make(map[string]string),
		meta:     make(map[string]map[string]any),
	}
}

// Config returns the configuration the registry was built with.
func (r *Registry[E]) Config() apis.Config { return r.cfg }

// Normalize canonicalizes a raw name using this registry's suffix.
func (r *Registry[E]) Normalize(s string) string {
	return norm.String(s, r.cfg.Suffix)
}

// Register adds an element under its extracted name, plus any synonyms
// (explicit ones unioned with the element's Synonyms hook). A key already
// present in either mapping fails with a conflict error; a synonym that
// normalizes to "" fails with ErrEmptySynonym. Registration is fail-fast:
// synonyms applied before the failing one remain applied.
func (r *Registry[E]) Register(e E, synonyms ...string) error {
	return r.register(r.hooks.Name(e), e, synonyms, true)
}

// RegisterTolerant is Register with conflict detection disabled: existing
// entries are kept and the clashing ones silently dropped. Empty synonyms
// still fail.
func (r *Registry[E]) RegisterTolerant(e E, synonyms ...string) error {
	return r.register(r.hooks.Name(e), e, synonyms, false)
}

// RegisterAs registers an element under an explicit raw name instead of the
// extracted one. Useful for elements without a usable intrinsic name, such
// as closures.
func (r *Registry[E]) RegisterAs(name string, e E, synonyms ...string) error {
	return r.register(name, e, synonyms, true)
}

func (r *Registry[E]) register(name string, e E, synonyms []string, strict bool) error {
	key := r.Normalize(name)
	if key == "" {
		return &EmptyKeyError{Name: name, Proposed: e}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.primary[key]; ok {
		if strict {
			return &NameConflictError{Key: key, Existing: existing, Proposed: e, Origin: "name"}
		}
	} else if existing, ok := r.synonyms[key]; ok {
		if strict {
			return &SynonymConflictError{Key: key, Existing: existing, Proposed: e, Origin: "name"}
		}
	} else {
		r.primary[key] = e
	}

	all := append([]string(nil), synonyms...)
	if r.hooks.Synonyms != nil {
		all = append(all, r.hooks.Synonyms(e)...)
	}

	seen := make(map[string]struct{}, len(all))
	for _, syn := range all {
		sk := r.Normalize(syn)
		if sk == "" {
			return &EmptySynonymError{Synonym: syn, Proposed: e}
		}
		if sk == key {
			continue // already covered by the canonical key
		}
		if _, dup := seen[sk]; dup {
			continue
		}
		seen[sk] = struct{}{}

		if existing, ok := r.primary[sk]; ok {
			if strict {
				return &NameConflictError{Key: sk, Existing: existing, Proposed: e, Origin: "synonym"}
			}
			continue
		}
		if existing, ok := r.synonyms[sk]; ok {
			if strict {
				return &SynonymConflictError{Key: sk, Existing: existing, Proposed: e, Origin: "synonym"}
			}
			continue
		}
		r.synonyms[sk] = e
		r.synCanon[sk] = key
	}
	return nil
}

// Get returns the element for a raw name, consulting the primary mapping
// first and the synonyms second.
func (r *Registry[E]) Get(name string) (E, bool) {
	key := r.Normalize(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.primary[key]; ok {
		return e, true
	}
	e, ok := r.synonyms[key]
	return e, ok
}

// Options returns the sorted union of primary keys and synonyms: the
// complete set of valid lookup strings.
func (r *Registry[E]) Options() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.primary)+len(r.synonyms))
	for k := range r.primary {
		out = append(out, k)
	}
	for k := range r.synonyms {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Keys returns the sorted primary (canonical) keys only.
func (r *Registry[E]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.primary))
	for k := range r.primary {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Elements returns the registered elements in canonical key order.
func (r *Registry[E]) Elements() []E {
	keys := r.Keys()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]E, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.primary[k])
	}
	return out
}

// Len returns the number of primary entries.
func (r *Registry[E]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.primary)
}

// ReverseSynonyms maps every canonical key to its sorted synonyms.
// Keys without synonyms map to an empty slice.
func (r *Registry[E]) ReverseSynonyms() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]string, len(r.primary))
	for k := range r.primary {
		out[k] = []string{}
	}
	for syn, canon := range r.synCanon {
		out[canon] = append(out[canon], syn)
	}
	for _, syns := range out {
		sort.Strings(syns)
	}
	return out
}

// SetDefault stores the element returned for an absent query.
func (r *Registry[E]) SetDefault(e E) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.def = e
	r.hasDef = true
}

// Default returns the stored default element, if any.
func (r *Registry[E]) Default() (E, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def, r.hasDef
}

// KeyOf returns the canonical key an element is registered under,
// using the Same hook for identity.
func (r *Registry[E]) KeyOf(e E) (string, bool) {
	if r.hooks.Same == nil {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for k, v := range r.primary {
		if r.hooks.Same(v, e) {
			return k, true
		}
	}
	return "", false
}

// Contains reports whether the element is already registered, by identity.
func (r *Registry[E]) Contains(e E) bool {
	_, ok := r.KeyOf(e)
	return ok
}

// SetMeta attaches structured metadata to a registered name.
func (r *Registry[E]) SetMeta(name string, meta map[string]any) error {
	key := r.Normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.primary[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, key)
	}
	r.meta[key] = meta
	return nil
}

// Meta returns the metadata stored for a canonical key.
func (r *Registry[E]) Meta(key string) (map[string]any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.meta[key]
	return m, ok
}

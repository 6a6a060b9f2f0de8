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

// Package resolver builds the lookup and construction algorithms on top of
// the registry: polymorphic queries, defaults, batch construction, and the
// class- and function-oriented specializations.
package resolver

import (
	"fmt"
	"log/slog"

	"dirpx.dev/resolv/apis"
	"dirpx.dev/resolv/registry"
)

// core is the registry-backed plumbing shared by both specializations:
// string lookup, default fallback, and the read-only views a resolver
// exposes to collaborators (CLI option generation, search domains, docs).
type core[E any] struct {
	reg *registry.Registry[E]
	// base is the human-readable name of the base type, for error messages.
	base string
}

// Normalize canonicalizes a raw name using the resolver's suffix.
func (c *core[E]) Normalize(s string) string { return c.reg.Normalize(s) }

// Options returns the sorted set of all valid lookup strings.
func (c *core[E]) Options() []string { return c.reg.Options() }

// Keys returns the sorted canonical keys only.
func (c *core[E]) Keys() []string { return c.reg.Keys() }

// Elements returns the registered elements in canonical key order.
func (c *core[E]) Elements() []E { return c.reg.Elements() }

// Len returns the number of registered elements.
func (c *core[E]) Len() int { return c.reg.Len() }

// ReverseSynonyms maps every canonical key to its sorted synonyms.
func (c *core[E]) ReverseSynonyms() map[string][]string { return c.reg.ReverseSynonyms() }

// Location returns the configured documentation reference for this resolver.
func (c *core[E]) Location() string { return c.reg.Config().Location }

// SetDefault stores the element returned for an absent query.
func (c *core[E]) SetDefault(e E) { c.reg.SetDefault(e) }

// lookupName resolves a raw name against the registry, primary mapping
// first, synonyms second.
func (c *core[E]) lookupName(raw string) (E, error) {
	if e, ok := c.reg.Get(raw); ok {
		return e, nil
	}
	var zero E
	return zero, &UnknownKeyError{
		Base:    c.base,
		Query:   raw,
		Key:     c.reg.Normalize(raw),
		Choices: c.reg.Options(),
	}
}

// lookupNone resolves the absent query: the stored default element first,
// then the configured default key.
func (c *core[E]) lookupNone() (E, error) {
	if e, ok := c.reg.Default(); ok {
		return e, nil
	}
	if key := c.reg.Config().DefaultKey; key != "" {
		return c.lookupName(key)
	}
	var zero E
	return zero, &NoDefaultError{Base: c.base}
}

// hasDefault reports whether lookupNone can succeed without consulting
// the registry contents.
func (c *core[E]) hasDefault() bool {
	if _, ok := c.reg.Default(); ok {
		return true
	}
	return c.reg.Config().DefaultKey != ""
}

// Suggest picks one canonical key through the supplied chooser (for
// example a hyper-parameter search trial) and resolves it. The chooser
// receives the parameter name and the sorted canonical keys.
func (c *core[E]) Suggest(pick func(name string, choices []string) string, name string) (E, error) {
	return c.lookupName(pick(name, c.reg.Keys()))
}

// SetDocdata attaches structured metadata to a registered name.
func (c *core[E]) SetDocdata(name string, data map[string]any) error {
	return c.reg.SetMeta(name, data)
}

// docdata retrieves metadata for a canonical key, optionally traversing a
// path of nested map[string]any keys.
func (c *core[E]) docdata(key string, path []string) (any, error) {
	meta, ok := c.reg.Meta(key)
	if !ok {
		return nil, fmt.Errorf("resolv(resolver): no docdata for %q", key)
	}
	var cur any = meta
	for _, part := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("resolv(resolver): docdata path %q does not traverse a mapping", part)
		}
		if cur, ok = m[part]; !ok {
			return nil, fmt.Errorf("resolv(resolver): docdata path %q not found", part)
		}
	}
	return cur, nil
}

// mergeKwargs flattens several kwargs sets into one. Keys supplied more
// than once fail with DuplicateKwargError; collisions are never silent.
func mergeKwargs(kwargss []apis.Kwargs) (apis.Kwargs, error) {
	var out apis.Kwargs
	for _, kw := range kwargss {
		if len(kw) == 0 {
			continue
		}
		if out == nil {
			out = make(apis.Kwargs, len(kw))
		}
		for k, v := range kw {
			if _, dup := out[k]; dup {
				return nil, &DuplicateKwargError{Key: k}
			}
			out[k] = v
		}
	}
	return out, nil
}

// NormalizeWithDefault reconciles an optional choice/kwargs pair against a
// default pair. A nil choice selects the default along with its kwargs; any
// explicitly supplied kwargs are dropped in that case, with a warning,
// because they were written against an unknown element.
func NormalizeWithDefault(
	choice apis.Query, kwargs apis.Kwargs,
	def apis.Query, defKwargs apis.Kwargs,
) (apis.Query, apis.Kwargs, error) {
	if !choice.IsNone() {
		return choice, kwargs, nil
	}
	if def.IsNone() {
		return apis.None(), nil, &MissingDefaultError{Base: "choice"}
	}
	if kwargs != nil {
		slog.Warn(
			"resolv: kwargs given without a choice; using the default and its kwargs",
			"default", def.String(),
		)
	}
	return def, defKwargs, nil
}

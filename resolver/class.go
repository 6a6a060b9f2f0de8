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

package resolver

import (
	"fmt"
	"log/slog"
	"reflect"

	"dirpx.dev/resolv/apis"
	"dirpx.dev/resolv/entrypoint"
	"dirpx.dev/resolv/norm"
	"dirpx.dev/resolv/registry"
	uref "dirpx.dev/resolv/utils/reflect"
)

// ClassResolver resolves named implementations of a base type T and
// instantiates them with keyword arguments. Elements are the named concrete
// types of registered prototype values; the product is a value assignable
// to T.
//
// Unless the configuration sets (or disables) a suffix, the normalized name
// of T itself is stripped from element names: in a resolver for Shape, a
// type named CircleShape registers under "circle".
type ClassResolver[T any] struct {
	core[reflect.Type]
	cfg      apis.Config
	baseType reflect.Type
}

// NewClass constructs a ClassResolver for base type T from prototype
// values. Prototypes are typically pointers to zero structs (&Circle{});
// their pointed-to named type becomes the element.
func NewClass[T any](cfg apis.Config, classes ...T) (*ClassResolver[T], error) {
	baseType := reflect.TypeOf((*T)(nil)).Elem()
	baseName := baseType.Name()
	if baseName == "" {
		baseName = baseType.String()
	}
	if !cfg.SuffixSet {
		cfg.Suffix = norm.String(baseName, "")
		cfg.SuffixSet = true
	}

	r := &ClassResolver[T]{
		cfg:      cfg,
		baseType: baseType,
	}
	r.core = core[reflect.Type]{
		reg:  registry.New(cfg, classHooks()),
		base: baseName,
	}
	for _, proto := range classes {
		if err := r.Register(proto); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// classHooks extracts names and synonyms from a zero instance of the
// element type, honoring the apis.Namer and apis.Synonymer capabilities.
func classHooks() registry.Hooks[reflect.Type] {
	return registry.Hooks[reflect.Type]{
		Name: func(t reflect.Type) string {
			if n, ok := zeroOf(t).(apis.Namer); ok {
				return n.ResolverName()
			}
			return t.Name()
		},
		Synonyms: func(t reflect.Type) []string {
			if s, ok := zeroOf(t).(apis.Synonymer); ok {
				return s.Synonyms()
			}
			return nil
		},
		Same: func(a, b reflect.Type) bool { return a == b },
	}
}

// zeroOf returns a pointer to a zero value of t, so that capabilities with
// either value or pointer receivers are visible.
func zeroOf(t reflect.Type) any {
	return reflect.New(t).Interface()
}

// elementType reduces an arbitrary prototype or type reference to the
// named element type and verifies it can serve as T.
func (r *ClassResolver[T]) elementType(t reflect.Type) (reflect.Type, error) {
	named, err := uref.Named(t, r.cfg)
	if err != nil {
		return nil, &InvalidTypeError{Base: r.base, Query: t}
	}
	if _, ok := uref.AssignableAs(named, r.baseType); !ok {
		return nil, &InvalidTypeError{Base: r.base, Query: named}
	}
	return named, nil
}

// Register adds a prototype's named type under its canonical name, plus
// the given synonyms unioned with any the type declares via
// apis.Synonymer. Conflicts with existing keys fail fast.
func (r *ClassResolver[T]) Register(proto T, synonyms ...string) error {
	t, err := r.elementType(reflect.TypeOf(proto))
	if err != nil {
		return err
	}
	return r.reg.Register(t, synonyms...)
}

// RegisterTolerant is Register with conflict detection disabled: existing
// entries win and clashing ones are dropped. Empty synonyms still fail.
func (r *ClassResolver[T]) RegisterTolerant(proto T, synonyms ...string) error {
	t, err := r.elementType(reflect.TypeOf(proto))
	if err != nil {
		return err
	}
	return r.reg.RegisterTolerant(t, synonyms...)
}

// Lookup resolves a query to the registered element type.
//
// An absent query falls back to the default; a name is normalized and
// consulted against the primary mapping, then the synonyms; a value query
// accepts a reflect.Type of (or convertible to) an element, or an
// already-constructed instance of T, which projects to its concrete type.
func (r *ClassResolver[T]) Lookup(q apis.Query) (reflect.Type, error) {
	switch q.Kind() {
	case apis.KindNone:
		return r.lookupNone()
	case apis.KindName:
		return r.lookupName(q.Name())
	case apis.KindValue:
		v := q.Value()
		if v == nil {
			return nil, &InvalidTypeError{Base: r.base, Query: v}
		}
		if t, ok := v.(reflect.Type); ok {
			return r.elementType(t)
		}
		if _, ok := v.(T); ok {
			return r.elementType(reflect.TypeOf(v))
		}
		return nil, &InvalidTypeError{Base: r.base, Query: v}
	default:
		return nil, &InvalidTypeError{Base: r.base, Query: q.Kind()}
	}
}

// LookupDefault is Lookup with an explicit per-call default, consulted
// before the resolver's configured one when the query is absent.
func (r *ClassResolver[T]) LookupDefault(q, def apis.Query) (reflect.Type, error) {
	if !q.IsNone() {
		return r.Lookup(q)
	}
	if !def.IsNone() {
		return r.Lookup(def)
	}
	return r.lookupNone()
}

// Make resolves a query and instantiates the element with the merged
// keyword arguments. An already-constructed instance of T passes through
// unchanged, ignoring any kwargs: pre-built objects are not re-parametrized.
func (r *ClassResolver[T]) Make(q apis.Query, kwargs ...apis.Kwargs) (T, error) {
	var zero T
	if q.Kind() == apis.KindValue {
		if inst, ok := q.Value().(T); ok {
			if _, isType := q.Value().(reflect.Type); !isType {
				return inst, nil
			}
		}
	}

	t, err := r.Lookup(q)
	if err != nil {
		return zero, err
	}
	kw, err := mergeKwargs(kwargs)
	if err != nil {
		return zero, err
	}
	return r.construct(t, kw)
}

// MakeSafe is Make, except an absent query yields the zero product and no
// error instead of consulting any default. This supports "optional, not
// required" call sites distinctly from "use the default".
func (r *ClassResolver[T]) MakeSafe(q apis.Query, kwargs ...apis.Kwargs) (T, error) {
	var zero T
	if q.IsNone() {
		return zero, nil
	}
	return r.Make(q, kwargs...)
}

// MakeMany resolves and constructs several queries together, reconciling
// one-or-many queries against one-or-many kwargs sets; see makeMany for
// the broadcasting rules. The common kwargs are merged into every call.
func (r *ClassResolver[T]) MakeMany(queries []apis.Query, kwargs []apis.Kwargs, common ...apis.Kwargs) ([]T, error) {
	return makeMany(queries, kwargs, common, r.base, r.hasDefault, r.Make)
}

// MakeFromMap instantiates from a configuration mapping holding the query
// under data[key] (a name or a direct value) and its kwargs under
// data[key+"_kwargs"].
func (r *ClassResolver[T]) MakeFromMap(data map[string]any, key string, common ...apis.Kwargs) (T, error) {
	q := apis.None()
	if v, ok := data[key]; ok && v != nil {
		switch x := v.(type) {
		case string:
			q = apis.ByName(x)
		default:
			q = apis.ByValue(x)
		}
	}

	var kw apis.Kwargs
	if v, ok := data[key+"_kwargs"]; ok && v != nil {
		m, ok := v.(map[string]any)
		if !ok {
			var zero T
			return zero, &InvalidTypeError{Base: r.base + " kwargs", Query: v}
		}
		kw = apis.Kwargs(m)
	}

	args := make([]apis.Kwargs, 0, len(common)+1)
	args = append(args, kw)
	args = append(args, common...)
	return r.Make(q, args...)
}

// Signature lists the keyword parameters the resolved element accepts,
// letting callers check constructibility without constructing.
func (r *ClassResolver[T]) Signature(q apis.Query) ([]apis.Param, error) {
	t, err := r.Lookup(q)
	if err != nil {
		return nil, err
	}
	return paramsOf(t), nil
}

// SupportsArgument reports whether the resolved element accepts the named
// keyword argument.
func (r *ClassResolver[T]) SupportsArgument(q apis.Query, name string) (bool, error) {
	params, err := r.Signature(q)
	if err != nil {
		return false, err
	}
	key := norm.String(name, "")
	for _, p := range params {
		if norm.String(p.Name, "") == key {
			return true, nil
		}
	}
	return false, nil
}

// Docdata resolves a query and returns the element's structured metadata,
// optionally traversing a path of nested keys.
func (r *ClassResolver[T]) Docdata(q apis.Query, path ...string) (any, error) {
	t, err := r.Lookup(q)
	if err != nil {
		return nil, err
	}
	key, ok := r.reg.KeyOf(t)
	if !ok {
		return nil, fmt.Errorf("resolv(resolver): no docdata for %s", t)
	}
	return r.docdata(key, path)
}

// LoadEntrypoints registers the elements exposed under an entry-point
// group. A nil provider uses the process-wide entrypoint registry. Entries
// that fail to load are logged and skipped rather than aborting the batch;
// elements already registered (by identity) are skipped silently.
func (r *ClassResolver[T]) LoadEntrypoints(group string, provider entrypoint.Provider) error {
	if provider == nil {
		provider = entrypoint.Entries
	}
	for _, ent := range provider(group) {
		v, err := ent.Load()
		if err != nil {
			slog.Warn("resolv: could not load entrypoint", "group", group, "name", ent.Name, "error", err)
			continue
		}

		var t reflect.Type
		switch x := v.(type) {
		case reflect.Type:
			t, err = r.elementType(x)
		default:
			t, err = r.elementType(reflect.TypeOf(v))
		}
		if err != nil {
			slog.Warn("resolv: entrypoint is not a valid element", "group", group, "name", ent.Name, "error", err)
			continue
		}
		if r.reg.Contains(t) {
			continue
		}
		if err := r.reg.Register(t); err != nil {
			return err
		}
	}
	return nil
}

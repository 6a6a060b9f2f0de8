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
	"errors"
	"log/slog"
	"reflect"

	"dirpx.dev/resolv/apis"
	"dirpx.dev/resolv/entrypoint"
	"dirpx.dev/resolv/registry"
	uref "dirpx.dev/resolv/utils/reflect"
)

// ErrNotFunc is returned when a FunctionResolver is instantiated for a
// non-func type parameter.
var ErrNotFunc = errors.New("resolv(resolver): type parameter is not a func type")

// Bound pairs a looked-up function with a frozen set of keyword arguments.
// Calling stays at the caller's discretion; a Bound with no kwargs is the
// bare function.
type Bound[F any] struct {
	// Fn is the resolved function.
	Fn F
	// Kwargs are the arguments frozen at Make time, nil when none were
	// supplied.
	Kwargs apis.Kwargs
}

// Bare reports whether no kwargs were bound.
func (b Bound[F]) Bare() bool { return len(b.Kwargs) == 0 }

// FunctionResolver resolves interchangeable functions of type F by name.
// Functions are registered under their own name (via runtime metadata) or
// an explicit one; Make yields a Bound carrying the function and any
// keyword arguments for later application.
type FunctionResolver[F any] struct {
	core[F]
	cfg apis.Config
}

// NewFunc constructs a FunctionResolver for the func type F from the given
// functions, each registered under its own name. Closures and method
// values with unusable runtime names should use RegisterNamed instead.
func NewFunc[F any](cfg apis.Config, fns ...F) (*FunctionResolver[F], error) {
	fnType := reflect.TypeOf((*F)(nil)).Elem()
	if fnType.Kind() != reflect.Func {
		return nil, ErrNotFunc
	}
	baseName := fnType.Name()
	if baseName == "" {
		baseName = fnType.String()
	}
	if !cfg.SuffixSet {
		cfg.SuffixSet = true // functions carry no implicit suffix
	}

	r := &FunctionResolver[F]{cfg: cfg}
	r.core = core[F]{
		reg: registry.New(cfg, registry.Hooks[F]{
			Name: func(fn F) string {
				return uref.FuncName(reflect.ValueOf(fn))
			},
			Same: func(a, b F) bool {
				return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
			},
		}),
		base: baseName,
	}
	for _, fn := range fns {
		if err := r.Register(fn); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a function under its own name, plus the given synonyms.
func (r *FunctionResolver[F]) Register(fn F, synonyms ...string) error {
	return r.reg.Register(fn, synonyms...)
}

// RegisterNamed adds a function under an explicit name, for closures and
// other functions without a usable intrinsic one.
func (r *FunctionResolver[F]) RegisterNamed(name string, fn F, synonyms ...string) error {
	return r.reg.RegisterAs(name, fn, synonyms...)
}

// RegisterTolerant is Register with conflict detection disabled.
func (r *FunctionResolver[F]) RegisterTolerant(fn F, synonyms ...string) error {
	return r.reg.RegisterTolerant(fn, synonyms...)
}

// Lookup resolves a query to the registered function. An absent query
// falls back to the default; a name is normalized and looked up; a value
// query must hold a function of type F, returned as-is.
func (r *FunctionResolver[F]) Lookup(q apis.Query) (F, error) {
	var zero F
	switch q.Kind() {
	case apis.KindNone:
		return r.lookupNone()
	case apis.KindName:
		return r.lookupName(q.Name())
	case apis.KindValue:
		if fn, ok := q.Value().(F); ok {
			return fn, nil
		}
		return zero, &InvalidTypeError{Base: r.base, Query: q.Value()}
	default:
		return zero, &InvalidTypeError{Base: r.base, Query: q.Kind()}
	}
}

// LookupDefault is Lookup with an explicit per-call default, consulted
// before the resolver's configured one when the query is absent.
func (r *FunctionResolver[F]) LookupDefault(q, def apis.Query) (F, error) {
	if !q.IsNone() {
		return r.Lookup(q)
	}
	if !def.IsNone() {
		return r.Lookup(def)
	}
	return r.lookupNone()
}

// Make resolves a query and binds the merged keyword arguments to the
// result. There is no construction here, so no error translation either:
// application happens lazily at the caller's discretion.
func (r *FunctionResolver[F]) Make(q apis.Query, kwargs ...apis.Kwargs) (Bound[F], error) {
	fn, err := r.Lookup(q)
	if err != nil {
		return Bound[F]{}, err
	}
	kw, err := mergeKwargs(kwargs)
	if err != nil {
		return Bound[F]{}, err
	}
	return Bound[F]{Fn: fn, Kwargs: kw}, nil
}

// MakeSafe is Make, except an absent query yields a zero Bound and no
// error instead of consulting any default.
func (r *FunctionResolver[F]) MakeSafe(q apis.Query, kwargs ...apis.Kwargs) (Bound[F], error) {
	if q.IsNone() {
		return Bound[F]{}, nil
	}
	return r.Make(q, kwargs...)
}

// MakeMany resolves several queries together under the same broadcasting
// rules as the class resolver.
func (r *FunctionResolver[F]) MakeMany(queries []apis.Query, kwargs []apis.Kwargs, common ...apis.Kwargs) ([]Bound[F], error) {
	return makeMany(queries, kwargs, common, r.base, r.hasDefault, r.Make)
}

// Docdata resolves a query and returns the function's structured metadata,
// optionally traversing a path of nested keys.
func (r *FunctionResolver[F]) Docdata(q apis.Query, path ...string) (any, error) {
	fn, err := r.Lookup(q)
	if err != nil {
		return nil, err
	}
	key, ok := r.reg.KeyOf(fn)
	if !ok {
		return nil, &InvalidTypeError{Base: r.base, Query: q.Value()}
	}
	return r.docdata(key, path)
}

// LoadEntrypoints registers the functions exposed under an entry-point
// group, skipping entries that fail to load or are already registered.
// A nil provider uses the process-wide entrypoint registry.
func (r *FunctionResolver[F]) LoadEntrypoints(group string, provider entrypoint.Provider) error {
	if provider == nil {
		provider = entrypoint.Entries
	}
	for _, ent := range provider(group) {
		v, err := ent.Load()
		if err != nil {
			slog.Warn("resolv: could not load entrypoint", "group", group, "name", ent.Name, "error", err)
			continue
		}
		fn, ok := v.(F)
		if !ok {
			slog.Warn("resolv: entrypoint is not a valid element", "group", group, "name", ent.Name)
			continue
		}
		if r.reg.Contains(fn) {
			continue
		}
		if err := r.reg.Register(fn); err != nil {
			return err
		}
	}
	return nil
}

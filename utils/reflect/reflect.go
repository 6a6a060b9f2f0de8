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

package reflect

import (
	"errors"
	"reflect"
	"runtime"
	"strings"

	"dirpx.dev/resolv/apis"
	"dirpx.dev/resolv/config"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrTypeNotNamed indicates that the provided type (after unwrapping
	// pointers) has no name and therefore cannot serve as a registry element.
	ErrTypeNotNamed = errors.New("reflect: type has no name")
)

// Named unwraps pointers according to cfg (MaxUnwrap) and returns the
// nearest named type, or an error if none is found. Prototypes are
// typically registered as pointers (&Circle{}), so a single unwrap is
// the common case; the depth limit guards against pathological nesting.
//
// If MaxUnwrap <= 0, config.DefaultMaxUnwrap is used.
func Named(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i <= maxUnwrap; i++ {
		if t.Name() != "" {
			return t, nil
		}
		if t.Kind() != reflect.Pointer {
			break
		}
		t = t.Elem()
	}

	if t.Name() != "" {
		return t, nil
	}
	return nil, ErrTypeNotNamed
}

// AssignableAs reports whether the named type t can serve as base, either
// directly or through a pointer, and returns the constructible type:
// t itself, or *t when only the pointer satisfies base (methods with
// pointer receivers).
func AssignableAs(t, base reflect.Type) (reflect.Type, bool) {
	if t == nil || base == nil {
		return nil, false
	}
	if t.AssignableTo(base) {
		return t, true
	}
	if pt := reflect.PointerTo(t); pt.AssignableTo(base) {
		return pt, true
	}
	return nil, false
}

// FuncName returns the short name of a func value ("Softplus" for
// example.Softplus), or "" when v is not a non-nil func. Method values
// lose their "-fm" marker; anonymous functions keep their "funcN" tail
// and generally need explicit naming at registration.
func FuncName(v reflect.Value) string {
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return ""
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

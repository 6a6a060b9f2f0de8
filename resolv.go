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

package resolv

import (
	"dirpx.dev/resolv/apis"
	"dirpx.dev/resolv/config"
	"dirpx.dev/resolv/norm"
	"dirpx.dev/resolv/resolver"
)

// Kwargs carries keyword arguments for element construction.
type Kwargs = apis.Kwargs

// Query selects an element: absent, by name, or by value.
type Query = apis.Query

// Param describes one keyword parameter of an element.
type Param = apis.Param

// ClassResolver resolves named implementations of a base type T; see the
// resolver package.
type ClassResolver[T any] = resolver.ClassResolver[T]

// FunctionResolver resolves interchangeable functions of type F; see the
// resolver package.
type FunctionResolver[F any] = resolver.FunctionResolver[F]

// Bound pairs a resolved function with frozen keyword arguments.
type Bound[F any] = resolver.Bound[F]

// None returns the absent query, selecting the resolver's default.
func None() Query { return apis.None() }

// ByName returns a query selecting an element by its (raw) name.
func ByName(name string) Query { return apis.ByName(name) }

// ByValue returns a query selecting an element by a value: a type, an
// instance, or a function, depending on the resolver.
func ByValue(v any) Query { return apis.ByValue(v) }

// Normalize canonicalizes a raw name: lower-case, separators removed, and
// the suffix stripped from the end until it no longer occurs.
func Normalize(s, suffix string) string { return norm.String(s, suffix) }

// NewClassResolver builds a resolver for implementations of the base type
// T, seeded with the given prototype values.
func NewClassResolver[T any](classes []T, opts ...config.Option) (*ClassResolver[T], error) {
	return resolver.NewClass[T](config.NewConfig(opts...), classes...)
}

// NewFunctionResolver builds a resolver for functions of type F, seeded
// with the given functions registered under their own names.
func NewFunctionResolver[F any](fns []F, opts ...config.Option) (*FunctionResolver[F], error) {
	return resolver.NewFunc[F](config.NewConfig(opts...), fns...)
}

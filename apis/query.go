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

package apis

import "fmt"

// Kwargs is a set of keyword arguments used to construct an element.
type Kwargs map[string]any

// QueryKind discriminates the Query sum type.
type QueryKind uint8

const (
	// KindNone is the absent query; lookups fall back to a default.
	KindNone QueryKind = iota
	// KindName is a lookup by (to be normalized) name.
	KindName
	// KindValue is a direct reference: an element, a type reference,
	// or an already-constructed instance of the product type.
	KindValue
)

// Query is the input to Lookup and Make. It is a tagged union over
// the three shapes a caller may supply: nothing, a name, or a value.
// The zero Query is the absent query.
//
// Queries are transient; resolvers never retain them.
type Query struct {
	kind  QueryKind
	name  string
	value any
}

// None returns the absent query.
func None() Query { return Query{} }

// ByName returns a query that looks up an element by name.
// The name is normalized by the receiving resolver.
func ByName(name string) Query { return Query{kind: KindName, name: name} }

// ByValue returns a query holding a direct reference: a registered element,
// a reflect.Type of one, or an already-constructed instance.
func ByValue(v any) Query { return Query{kind: KindValue, value: v} }

// Kind returns the discriminant of the query.
func (q Query) Kind() QueryKind { return q.kind }

// IsNone reports whether the query is absent.
func (q Query) IsNone() bool { return q.kind == KindNone }

// Name returns the raw (un-normalized) name of a KindName query.
func (q Query) Name() string { return q.name }

// Value returns the referenced value of a KindValue query.
func (q Query) Value() any { return q.value }

// String renders the query for diagnostics.
func (q Query) String() string {
	switch q.kind {
	case KindName:
		return fmt.Sprintf("name(%q)", q.name)
	case KindValue:
		return fmt.Sprintf("value(%T)", q.value)
	default:
		return "none"
	}
}

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

// Config carries read-only knobs shared by registries and resolvers.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Suffix is stripped from the end of normalized names before they are
	// used as lookup keys. A registry for Shape implementations with suffix
	// "shape" indexes a type named "CircleShape" under "circle".
	Suffix string

	// SuffixSet distinguishes an explicitly configured suffix (including the
	// empty one, which disables stripping) from an absent one. When unset,
	// the class resolver derives the suffix from its base type's name.
	SuffixSet bool

	// DefaultKey names the element to return for an absent query.
	// It is resolved lazily on lookup, so the element may be registered
	// after the resolver is constructed.
	DefaultKey string

	// Location is a fully-qualified reference to the resolver instance,
	// usable by documentation tooling to re-import it. Metadata only;
	// it never influences resolution.
	Location string

	// MaxUnwrap limits pointer unwrapping depth when reducing a prototype
	// to its named element type. Acts as a safety guard against
	// pathological nesting.
	MaxUnwrap int
}

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
	"fmt"
	"strings"
)

var (
	// ErrNoDefault anchors lookups with no query and no default anywhere.
	ErrNoDefault = errors.New("resolv(resolver): no default available")
	// ErrUnknownKey anchors string queries absent from both mappings.
	ErrUnknownKey = errors.New("resolv(resolver): unknown key")
	// ErrInvalidType anchors queries of an unsupported shape.
	ErrInvalidType = errors.New("resolv(resolver): invalid query type")
	// ErrKeywordArgument anchors construction failures on a missing
	// required keyword argument.
	ErrKeywordArgument = errors.New("resolv(resolver): missing required keyword argument")
	// ErrUnexpectedKeyword anchors kwargs handed to an element that
	// accepts none.
	ErrUnexpectedKeyword = errors.New("resolv(resolver): unexpected keyword arguments")
	// ErrMismatchedLengths anchors irreconcilable query/kwargs counts in
	// MakeMany.
	ErrMismatchedLengths = errors.New("resolv(resolver): mismatched queries and kwargs")
	// ErrMissingDefault anchors MakeMany with no queries and no default.
	ErrMissingDefault = errors.New("resolv(resolver): no default configured")
	// ErrDuplicateKwarg anchors a key supplied by more than one kwargs set.
	ErrDuplicateKwarg = errors.New("resolv(resolver): duplicate keyword argument")
)

// NoDefaultError reports a lookup with an absent query when neither an
// explicit nor a configured default exists.
type NoDefaultError struct {
	// Base is the human-readable name of the resolver's base type.
	Base string
}

// Error implements the error interface.
func (e *NoDefaultError) Error() string {
	return fmt.Sprintf("no default %s set", e.Base)
}

// Is matches the ErrNoDefault anchor.
func (e *NoDefaultError) Is(target error) bool { return target == ErrNoDefault }

// UnknownKeyError reports a string query whose normalized key is absent
// from both the primary and synonym mappings. The message enumerates the
// valid options so it is self-sufficient for debugging.
type UnknownKeyError struct {
	Base    string
	Query   string
	Key     string
	Choices []string
}

// Error implements the error interface.
func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf(
		"invalid %s name: %q (normalized to: %q); valid choices are: [%s]",
		e.Base, e.Query, e.Key, strings.Join(e.Choices, ", "),
	)
}

// Is matches the ErrUnknownKey anchor.
func (e *UnknownKeyError) Is(target error) bool { return target == ErrUnknownKey }

// InvalidTypeError reports a query that is neither absent, a name, an
// element subtype, nor a product instance.
type InvalidTypeError struct {
	Base  string
	Query any
}

// Error implements the error interface.
func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid %s query: %T (%v)", e.Base, e.Query, e.Query)
}

// Is matches the ErrInvalidType anchor.
func (e *InvalidTypeError) Is(target error) bool { return target == ErrInvalidType }

// KeywordArgumentError reports construction that failed because a required
// keyword argument was absent.
type KeywordArgumentError struct {
	// Type is the element's name.
	Type string
	// Param is the offending parameter.
	Param string
}

// Error implements the error interface.
func (e *KeywordArgumentError) Error() string {
	return fmt.Sprintf("%s: missing required keyword argument: %q", e.Type, e.Param)
}

// Is matches the ErrKeywordArgument anchor.
func (e *KeywordArgumentError) Is(target error) bool { return target == ErrKeywordArgument }

// UnexpectedKeywordError reports keyword arguments handed to an element
// that does not accept any.
type UnexpectedKeywordError struct {
	// Type is the element's name.
	Type string
}

// Error implements the error interface.
func (e *UnexpectedKeywordError) Error() string {
	return fmt.Sprintf("%s did not expect any keyword arguments", e.Type)
}

// Is matches the ErrUnexpectedKeyword anchor.
func (e *UnexpectedKeywordError) Is(target error) bool { return target == ErrUnexpectedKeyword }

// MismatchedLengthsError reports MakeMany query/kwargs sequences whose
// lengths cannot be reconciled by broadcasting.
type MismatchedLengthsError struct {
	Queries int
	Kwargs  int
}

// Error implements the error interface.
func (e *MismatchedLengthsError) Error() string {
	if e.Queries == 0 && e.Kwargs > 0 {
		return "keyword arguments were given but no query"
	}
	return fmt.Sprintf("mismatch in number of queries (%d) and kwargs (%d)", e.Queries, e.Kwargs)
}

// Is matches the ErrMismatchedLengths anchor.
func (e *MismatchedLengthsError) Is(target error) bool { return target == ErrMismatchedLengths }

// MissingDefaultError reports MakeMany invoked with no queries on a
// resolver that has no configured default.
type MissingDefaultError struct {
	Base string
}

// Error implements the error interface.
func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("no queries given and no default %s configured", e.Base)
}

// Is matches the ErrMissingDefault anchor.
func (e *MissingDefaultError) Is(target error) bool { return target == ErrMissingDefault }

// DuplicateKwargError reports a keyword argument supplied by more than one
// kwargs set in the same call; such collisions are never silent.
type DuplicateKwargError struct {
	Key string
}

// Error implements the error interface.
func (e *DuplicateKwargError) Error() string {
	return fmt.Sprintf("keyword argument %q supplied more than once", e.Key)
}

// Is matches the ErrDuplicateKwarg anchor.
func (e *DuplicateKwargError) Is(target error) bool { return target == ErrDuplicateKwarg }

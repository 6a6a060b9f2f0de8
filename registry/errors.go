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

package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrNameConflict anchors conflicts against a primary (canonical) key.
	ErrNameConflict = errors.New("resolv(registry): conflicting name registration")
	// ErrSynonymConflict anchors conflicts against an existing synonym.
	ErrSynonymConflict = errors.New("resolv(registry): conflicting synonym registration")
	// ErrEmptySynonym is the anchor for synonyms that normalize to "".
	ErrEmptySynonym = errors.New("resolv(registry): empty synonym")
	// ErrEmptyKey is the anchor for canonical names that normalize to "".
	ErrEmptyKey = errors.New("resolv(registry): name normalizes to an empty key")
	// ErrUnknownName indicates a metadata operation on an unregistered name.
	ErrUnknownName = errors.New("resolv(registry): unknown name")
)

// NameConflictError reports a registration that clashed with a primary key.
// Origin tells what was being registered when the clash occurred: the
// element's canonical "name" or one of its "synonym"s.
type NameConflictError struct {
	Key      string
	Existing any
	Proposed any
	Origin   string
}

// Error implements the error interface.
func (e *NameConflictError) Error() string {
	return fmt.Sprintf(
		"resolv(registry): conflict on registration of %s %q: existing %v, proposed %v",
		e.Origin, e.Key, e.Existing, e.Proposed,
	)
}

// Is matches the ErrNameConflict anchor.
func (e *NameConflictError) Is(target error) bool { return target == ErrNameConflict }

// SynonymConflictError reports a registration that clashed with an existing
// synonym. Origin is "name" or "synonym", as for NameConflictError.
type SynonymConflictError struct {
	Key      string
	Existing any
	Proposed any
	Origin   string
}

// Error implements the error interface.
func (e *SynonymConflictError) Error() string {
	return fmt.Sprintf(
		"resolv(registry): conflict on registration of %s %q against synonym: existing %v, proposed %v",
		e.Origin, e.Key, e.Existing, e.Proposed,
	)
}

// Is matches the ErrSynonymConflict anchor.
func (e *SynonymConflictError) Is(target error) bool { return target == ErrSynonymConflict }

// EmptySynonymError reports a synonym that normalized to the empty string.
// It is returned regardless of the conflict policy in effect.
type EmptySynonymError struct {
	Synonym  string
	Proposed any
}

// Error implements the error interface.
func (e *EmptySynonymError) Error() string {
	return fmt.Sprintf("resolv(registry): empty synonym %q for %v", e.Synonym, e.Proposed)
}

// Is matches the ErrEmptySynonym anchor.
func (e *EmptySynonymError) Is(target error) bool { return target == ErrEmptySynonym }

// EmptyKeyError reports a canonical name that normalized to the empty
// string; the empty key is never registrable.
type EmptyKeyError struct {
	Name     string
	Proposed any
}

// Error implements the error interface.
func (e *EmptyKeyError) Error() string {
	return fmt.Sprintf("resolv(registry): name %q normalizes to an empty key for %v", e.Name, e.Proposed)
}

// Is matches the ErrEmptyKey anchor.
func (e *EmptyKeyError) Is(target error) bool { return target == ErrEmptyKey }

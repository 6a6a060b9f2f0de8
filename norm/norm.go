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

// Package norm canonicalizes raw names into registry lookup keys.
package norm

import "strings"

// separators removes every hyphen, underscore, and space.
var separators = strings.NewReplacer("-", "", "_", "", " ", "")

// String normalizes a raw name for lookup: lower-case, remove all
// occurrences of '-', '_', and ' ', then strip the suffix (compared
// lower-cased) from the end as long as it remains. An empty suffix
// disables stripping.
//
// The function is total and idempotent:
// String(String(s, suffix), suffix) == String(s, suffix).
func String(s, suffix string) string {
	s = separators.Replace(strings.ToLower(s))
	if sfx := separators.Replace(strings.ToLower(suffix)); sfx != "" {
		for strings.HasSuffix(s, sfx) {
			s = s[:len(s)-len(sfx)]
		}
	}
	return s
}

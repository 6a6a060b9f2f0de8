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

import (
	"fmt"
	"reflect"
)

// Namer lets an element override the name it is registered under.
// Without it, the element's type (or function) name is used.
// Implementations must be callable on a zero value of the element.
type Namer interface {
	ResolverName() string
}

// Synonymer declares additional lookup names for an element. The registry
// consults this capability during registration and unions the result with
// any explicitly passed synonyms.
// Implementations must be callable on a zero value of the element.
type Synonymer interface {
	Synonyms() []string
}

// Initializer runs after keyword arguments have been decoded into a freshly
// constructed element. Returning a MissingKwargError (possibly wrapped)
// signals that a required argument was absent; any other error propagates
// to the Make caller unchanged.
type Initializer interface {
	Init() error
}

// MissingKwargError signals from Initializer.Init that a required keyword
// argument was not supplied.
type MissingKwargError struct {
	// Param is the missing parameter name.
	Param string
}

// Error implements the error interface.
func (e *MissingKwargError) Error() string {
	return fmt.Sprintf("missing required keyword argument: %q", e.Param)
}

// Param describes one keyword parameter accepted by an element.
type Param struct {
	// Name is the normalized parameter name.
	Name string
	// Type is the parameter's Go type.
	Type reflect.Type
	// Required reports whether construction fails when the parameter
	// is absent.
	Required bool
}

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
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"dirpx.dev/resolv/apis"
	"dirpx.dev/resolv/norm"
	uref "dirpx.dev/resolv/utils/reflect"
)

// tagName is the struct tag read for keyword parameter names.
// `resolv:"-"` excludes a field; `required:"true"` marks it mandatory.
const tagName = "resolv"

// construct instantiates the element type t and decodes kw into its
// exported fields. Required parameters missing from kw fail with
// KeywordArgumentError; kwargs given to an element with no parameters fail
// with UnexpectedKeywordError; other decode failures propagate unchanged.
// After decoding, the apis.Initializer capability runs, with its
// MissingKwargError likewise translated.
func (r *ClassResolver[T]) construct(t reflect.Type, kw apis.Kwargs) (T, error) {
	var zero T

	ct, ok := uref.AssignableAs(t, r.baseType)
	if !ok {
		return zero, &InvalidTypeError{Base: r.base, Query: t}
	}

	params := paramsOf(t)
	if len(kw) > 0 && len(params) == 0 {
		return zero, &UnexpectedKeywordError{Type: t.Name()}
	}
	for _, p := range params {
		if !p.Required {
			continue
		}
		if !hasKwarg(kw, p.Name) {
			return zero, &KeywordArgumentError{Type: t.Name(), Param: p.Name}
		}
	}

	pv := reflect.New(t)
	if len(kw) > 0 {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      pv.Interface(),
			TagName:     tagName,
			ErrorUnused: true,
			MatchName: func(mapKey, fieldName string) bool {
				return norm.String(mapKey, "") == norm.String(fieldName, "")
			},
		})
		if err != nil {
			return zero, err
		}
		if err := dec.Decode(map[string]any(kw)); err != nil {
			return zero, err
		}
	}

	var out any
	if ct.Kind() == reflect.Pointer {
		out = pv.Interface()
	} else {
		out = pv.Elem().Interface()
	}

	if init, ok := out.(apis.Initializer); ok {
		if err := init.Init(); err != nil {
			var miss *apis.MissingKwargError
			if errors.As(err, &miss) {
				return zero, &KeywordArgumentError{Type: t.Name(), Param: miss.Param}
			}
			return zero, err
		}
	}

	prod, ok := out.(T)
	if !ok {
		return zero, &InvalidTypeError{Base: r.base, Query: out}
	}
	return prod, nil
}

// paramsOf lists the keyword parameters of an element type: its exported
// struct fields, named by the resolv tag or the normalized field name.
// Non-struct elements accept no parameters.
func paramsOf(t reflect.Type) []apis.Param {
	if t.Kind() != reflect.Struct {
		return nil
	}
	var out []apis.Param
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get(tagName)
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = norm.String(f.Name, "")
		}
		out = append(out, apis.Param{
			Name:     name,
			Type:     f.Type,
			Required: f.Tag.Get("required") == "true",
		})
	}
	return out
}

// hasKwarg reports whether kw supplies the parameter, comparing keys in
// normalized form.
func hasKwarg(kw apis.Kwargs, param string) bool {
	want := norm.String(param, "")
	for k := range kw {
		if norm.String(k, "") == want {
			return true
		}
	}
	return false
}

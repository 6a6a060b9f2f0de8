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

// Package cli derives command-line flags from a resolver's choices, so
// that the set of valid values on the command line always tracks the set
// of registered elements.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Choices is the read-only resolver surface a flag needs: the valid
// strings, the normalizer, and the synonym structure for help text.
// Both resolver specializations satisfy it.
type Choices interface {
	Options() []string
	Normalize(s string) string
	Keys() []string
	ReverseSynonyms() map[string][]string
}

// Value is a pflag.Value whose accepted strings are a resolver's options.
// Set stores the normalized key, so downstream code can hand it straight
// to the resolver without re-normalizing.
type Value struct {
	choices Choices
	name    string
	key     string
	set     bool
}

// NewValue builds a flag value over the given choices. The default is
// normalized immediately; an empty default means unset.
func NewValue(choices Choices, def string) *Value {
	v := &Value{choices: choices}
	if def != "" {
		v.key = choices.Normalize(def)
	}
	return v
}

var _ pflag.Value = (*Value)(nil)

// Set validates and stores a raw choice. Unknown choices fail with a
// message enumerating the valid ones.
func (v *Value) Set(s string) error {
	key := v.choices.Normalize(s)
	for _, opt := range v.choices.Options() {
		if v.choices.Normalize(opt) == key {
			v.key = key
			v.set = true
			return nil
		}
	}
	return fmt.Errorf("invalid choice %q; expected one of %s", s, strings.Join(v.choices.Options(), ", "))
}

// String returns the stored canonical key, or the default when unset.
func (v *Value) String() string { return v.key }

// Type names the value kind in help output.
func (v *Value) Type() string { return "choice" }

// Changed reports whether Set succeeded at least once.
func (v *Value) Changed() bool { return v.set }

// Metavar renders the canonical keys as a usage placeholder, like
// "{circle,square}" with the given affixes. Synonyms are omitted to keep
// the line short; help text carries them instead.
func Metavar(choices Choices, prefix, delimiter, suffix string) string {
	return prefix + strings.Join(choices.Keys(), delimiter) + suffix
}

// helpText appends the valid choices, with synonyms in parentheses, to a
// base usage string.
func helpText(choices Choices, usage string) string {
	rev := choices.ReverseSynonyms()
	parts := make([]string, 0, len(rev))
	for _, key := range choices.Keys() {
		if syns := rev[key]; len(syns) > 0 {
			parts = append(parts, fmt.Sprintf("%s (%s)", key, strings.Join(syns, ", ")))
		} else {
			parts = append(parts, key)
		}
	}
	if usage != "" {
		usage += " "
	}
	return usage + "(one of: " + strings.Join(parts, "; ") + ")"
}

// Flag registers a choice flag on a pflag set and returns its Value for
// inspection after parsing.
func Flag(fs *pflag.FlagSet, choices Choices, name, def, usage string) *Value {
	v := NewValue(choices, def)
	fs.Var(v, name, helpText(choices, usage))
	return v
}

// Option registers a choice flag on a cobra command.
func Option(cmd *cobra.Command, choices Choices, name, def, usage string) *Value {
	return Flag(cmd.Flags(), choices, name, def, usage)
}

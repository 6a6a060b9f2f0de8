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

package cli

import (
	"io"
	"sort"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticChoices is a fixed Choices implementation, standing in for a
// resolver in these tests.
type staticChoices struct {
	keys map[string][]string
	norm func(string) string
}

func (s staticChoices) Normalize(raw string) string { return s.norm(raw) }

func (s staticChoices) Keys() []string {
	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s staticChoices) Options() []string {
	out := s.Keys()
	for _, syns := range s.keys {
		out = append(out, syns...)
	}
	return out
}

func (s staticChoices) ReverseSynonyms() map[string][]string { return s.keys }

func lower(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c == '-' || c == '_' {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func testChoices() staticChoices {
	return staticChoices{
		norm: lower,
		keys: map[string][]string{
			"circle": {"round"},
			"square": {},
		},
	}
}

func TestValueSet(t *testing.T) {
	v := NewValue(testChoices(), "")

	require.NoError(t, v.Set("Circle"))
	assert.Equal(t, "circle", v.String())
	assert.True(t, v.Changed())

	require.NoError(t, v.Set("round"))
	assert.Equal(t, "round", v.String())
}

func TestValueSetInvalid(t *testing.T) {
	v := NewValue(testChoices(), "")
	err := v.Set("triangle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"triangle"`)
	assert.Contains(t, err.Error(), "circle")
	assert.False(t, v.Changed())
	assert.Empty(t, v.String())
}

func TestValueDefault(t *testing.T) {
	v := NewValue(testChoices(), "Circle")
	assert.Equal(t, "circle", v.String())
	assert.False(t, v.Changed())
}

func TestMetavar(t *testing.T) {
	got := Metavar(testChoices(), "{", ",", "}")
	assert.Equal(t, "{circle,square}", got)
}

func TestFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := Flag(fs, testChoices(), "shape", "square", "which shape to draw")

	require.NoError(t, fs.Parse([]string{"--shape", "Round"}))
	assert.Equal(t, "round", v.String())
	assert.True(t, v.Changed())

	usage := fs.Lookup("shape").Usage
	assert.Contains(t, usage, "which shape to draw")
	assert.Contains(t, usage, "circle (round)")
	assert.Contains(t, usage, "square")
}

func TestFlagParseError(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_ = Flag(fs, testChoices(), "shape", "", "")

	err := fs.Parse([]string{"--shape", "triangle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid choice")
}

func TestOption(t *testing.T) {
	cmd := &cobra.Command{Use: "draw", RunE: func(*cobra.Command, []string) error { return nil }}
	v := Option(cmd, testChoices(), "shape", "circle", "which shape to draw")

	cmd.SetArgs([]string{"--shape", "square"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "square", v.String())
}

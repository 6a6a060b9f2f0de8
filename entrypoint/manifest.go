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

package entrypoint

import (
	"gopkg.in/yaml.v3"
)

// Manifest is a declarative allowlist of entry names per group, usually
// loaded from a deployment's configuration file. It does not carry loaders
// itself; it filters a Provider that does.
type Manifest struct {
	Groups map[string][]string `yaml:"groups"`
}

// ParseManifest decodes a YAML manifest document.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Provider wraps next so that only the entries the manifest names survive,
// in the manifest's order. Groups absent from the manifest yield nothing.
func (m Manifest) Provider(next Provider) Provider {
	return func(group string) []Entry {
		names := m.Groups[group]
		if len(names) == 0 {
			return nil
		}
		byName := map[string]Entry{}
		for _, ent := range next(group) {
			if _, ok := byName[ent.Name]; !ok {
				byName[ent.Name] = ent
			}
		}
		out := make([]Entry, 0, len(names))
		for _, name := range names {
			if ent, ok := byName[name]; ok {
				out = append(out, ent)
			}
		}
		return out
	}
}

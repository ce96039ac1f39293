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

package descriptor

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"dirpx.dev/bindctor/apis"
)

// Document is the on-disk form of a set of type descriptors.
//
//	types:
//	  - name: app.ServerProperties
//	    constructors:
//	      - name: NewServerProperties
//	        primary: true
//	        parameters:
//	          - {name: host, type: string}
//	          - {name: port, type: int, default: true}
type Document struct {
	Types []*apis.TypeDescriptor `json:"types"`
}

// Parse decodes and validates a YAML or JSON descriptor document.
// Unknown keys are rejected; type names must be unique.
func Parse(data []byte) ([]*apis.TypeDescriptor, error) {
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}

	seen := make(map[string]struct{}, len(doc.Types))
	for i, td := range doc.Types {
		if td == nil {
			return nil, fmt.Errorf("%w: types[%d] is empty", ErrInvalidDescriptor, i)
		}
		if err := Validate(td); err != nil {
			return nil, err
		}
		if _, dup := seen[td.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate type %q", ErrInvalidDescriptor, td.Name)
		}
		seen[td.Name] = struct{}{}
	}
	return doc.Types, nil
}

// Load reads and parses the descriptor document at path.
func Load(path string) ([]*apis.TypeDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bindctor(descriptor): read %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal encodes descriptors as a YAML document accepted by Parse.
func Marshal(tds []*apis.TypeDescriptor) ([]byte, error) {
	return yaml.Marshal(Document{Types: tds})
}

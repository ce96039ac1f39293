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

package config

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"dirpx.dev/bindctor/apis"
)

// ErrInvalidFile is returned when a configuration file cannot be decoded.
var ErrInvalidFile = errors.New("bindctor(config): invalid configuration file")

// File is the on-disk form of apis.Config. Unset fields keep their defaults.
//
//	primaryConstructorEligible: false
//	maxUnwrap: 4
//	cache: true
type File struct {
	PrimaryConstructorEligible *bool `json:"primaryConstructorEligible,omitempty"`
	MaxUnwrap                  *int  `json:"maxUnwrap,omitempty"`
	Cache                      *bool `json:"cache,omitempty"`
}

// Options converts the set fields of f into options.
func (f File) Options() []Option {
	var opts []Option
	if f.PrimaryConstructorEligible != nil {
		opts = append(opts, WithPrimaryConstructorEligible(*f.PrimaryConstructorEligible))
	}
	if f.MaxUnwrap != nil {
		opts = append(opts, WithMaxUnwrap(*f.MaxUnwrap))
	}
	if f.Cache != nil {
		opts = append(opts, WithCache(*f.Cache))
	}
	return opts
}

// Parse decodes a YAML or JSON document into a Config. Unknown keys are rejected.
// extra options are applied after the file, so callers can override it.
func Parse(data []byte, extra ...Option) (apis.Config, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return apis.Config{}, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return NewConfig(append(f.Options(), extra...)...), nil
}

// Load reads and parses the configuration file at path.
func Load(path string, extra ...Option) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("bindctor(config): read %s: %w", path, err)
	}
	return Parse(data, extra...)
}

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
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/bindctor/apis"
)

// ErrInvalidDescriptor wraps every descriptor validation failure.
var ErrInvalidDescriptor = errors.New("bindctor(descriptor): invalid type descriptor")

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(typeLevel, apis.TypeDescriptor{})
	v.RegisterStructValidation(constructorLevel, apis.ConstructorDescriptor{})
	return v
}

// Validate checks the structural invariants a metadata extractor must uphold:
//   - type, constructor, and parameter names are set;
//   - constructor names are unique within the type;
//   - parameter names are unique within a constructor;
//   - at most one constructor is primary;
//   - a DataLike type has exactly one primary constructor taking parameters.
//
// Contradictory binding marks are not validation errors; they are reported
// by the resolver.
func Validate(td *apis.TypeDescriptor) error {
	if td == nil {
		return fmt.Errorf("%w: nil descriptor", ErrInvalidDescriptor)
	}
	if err := validate.Struct(td); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDescriptor, td.Name, err)
	}
	return nil
}

func typeLevel(sl validator.StructLevel) {
	td := sl.Current().Interface().(apis.TypeDescriptor)

	seen := make(map[string]struct{}, len(td.Constructors))
	primaries := 0
	var primary *apis.ConstructorDescriptor
	for _, c := range td.Constructors {
		if c == nil {
			continue
		}
		if _, dup := seen[c.Name]; dup && c.Name != "" {
			sl.ReportError(td.Constructors, "Constructors", "Constructors", "unique_name", c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.Primary {
			primaries++
			primary = c
		}
	}
	if primaries > 1 {
		sl.ReportError(td.Constructors, "Constructors", "Constructors", "single_primary", "")
	}
	if td.DataLike && (primaries != 1 || primary.ParameterCount() == 0) {
		sl.ReportError(td.DataLike, "DataLike", "DataLike", "data_primary", "")
	}
}

func constructorLevel(sl validator.StructLevel) {
	c := sl.Current().Interface().(apis.ConstructorDescriptor)

	seen := make(map[string]struct{}, len(c.Parameters))
	for _, p := range c.Parameters {
		if _, dup := seen[p.Name]; dup && p.Name != "" {
			sl.ReportError(c.Parameters, "Parameters", "Parameters", "unique_name", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
}

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

package reflect

import (
	"errors"
	"path"
	"reflect"
	"strings"

	"dirpx.dev/bindctor/apis"
	"dirpx.dev/bindctor/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping pointers)
	// is not a named type (e.g., anonymous struct, func, slice).
	ErrReflectTypeNotNamed = errors.New("reflect: type is not a named type")
)

// Normalize unwraps pointers (up to cfg.MaxUnwrap levels) and returns the
// named type a constructor would produce: *T, **T -> T.
//
// Containers are not unwrapped: []T or map[K]T are never binding targets
// themselves. If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && t.Kind() == reflect.Ptr; i++ {
		t = t.Elem()
	}
	if t.Kind() == reflect.Ptr || t.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	return t, nil
}

// TypeName returns a stable "pkg.Type" name for t after normalization,
// with generic instantiation parameters stripped. Builtin named types
// have no package and are returned bare ("string"). Unnamed types fall
// back to t.String().
func TypeName(t reflect.Type, cfg apis.Config) string {
	if t == nil {
		return ""
	}
	base, err := Normalize(t, cfg)
	if err != nil {
		return t.String()
	}
	name := stripTypeParams(base.Name())
	if p := base.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

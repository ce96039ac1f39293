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
	"reflect"
	"strings"
)

// Parameter is a single constructor parameter.
type Parameter struct {
	// Name is the declared parameter name (or a positional placeholder).
	Name string `json:"name" validate:"required"`
	// TypeName is the printable parameter type, always set.
	TypeName string `json:"type" validate:"required"`
	// Type is the parameter type when the descriptor was extracted from Go code.
	Type reflect.Type `json:"-" validate:"-"`
	// HasDefault reports whether the parameter carries a language-level default value.
	HasDefault bool `json:"default,omitempty"`
}

// ConstructorDescriptor describes one declared constructor of a target type.
// Descriptors are immutable snapshots; resolvers never modify them.
type ConstructorDescriptor struct {
	// Name identifies the constructor for diagnostics.
	Name string `json:"name" validate:"required"`
	// Parameters in declaration order.
	Parameters []Parameter `json:"parameters,omitempty" validate:"dive"`
	// ConstructorBinding is an explicit request to bind configuration through this constructor.
	ConstructorBinding bool `json:"constructorBinding,omitempty"`
	// Autowired is an explicit request for a container to supply the parameters.
	Autowired bool `json:"autowired,omitempty"`
	// Primary marks the language-designated primary constructor.
	Primary bool `json:"primary,omitempty"`
	// Func is the constructor function when extracted from Go code. It is an
	// opaque handle for the binding engine; the zero Value means "new(T)".
	Func reflect.Value `json:"-" validate:"-"`
}

// ParameterCount returns the number of declared parameters.
func (c *ConstructorDescriptor) ParameterCount() int {
	if c == nil {
		return 0
	}
	return len(c.Parameters)
}

// String renders the constructor as "Name(a type, b type)".
func (c *ConstructorDescriptor) String() string {
	if c == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte('(')
	for i, p := range c.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteByte(' ')
		sb.WriteString(p.TypeName)
	}
	sb.WriteByte(')')
	return sb.String()
}

// TypeDescriptor is the target type under inspection together with its
// declared constructors.
type TypeDescriptor struct {
	// Name is the type identity used in diagnostics, e.g. "app.ServerProperties".
	Name string `json:"name" validate:"required"`
	// Type is the Go type, when known. File-sourced descriptors leave it nil.
	Type reflect.Type `json:"-" validate:"-"`
	// Constructors in declaration order. The primary constructor, if any, is included.
	Constructors []*ConstructorDescriptor `json:"constructors,omitempty" validate:"dive,required"`
	// DataLike marks types whose language feature guarantees exactly one
	// primary constructor with at least one parameter.
	DataLike bool `json:"dataLike,omitempty"`
}

// Primary returns the primary constructor, or nil if none is designated.
func (t *TypeDescriptor) Primary() *ConstructorDescriptor {
	if t == nil {
		return nil
	}
	for _, c := range t.Constructors {
		if c != nil && c.Primary {
			return c
		}
	}
	return nil
}

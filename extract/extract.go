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

// Package extract builds apis.TypeDescriptor values from Go constructor
// functions.
//
// Go has no constructors or annotations, so a constructor is any function
// returning the target type (T or *T), optionally followed by an error.
// Binding marks are attached explicitly at registration:
//
//	td, err := extract.Of[ServerProperties](
//		extract.Constructor(NewServerProperties, extract.ParamNames("host", "port")),
//		extract.Constructor(NewFromEnv, extract.Autowired()),
//	)
//
// The zero-value constructor (new(T)) is declared with ZeroValue.
package extract

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"dirpx.dev/bindctor/apis"
	"dirpx.dev/bindctor/config"
	"dirpx.dev/bindctor/descriptor"
	uref "dirpx.dev/bindctor/utils/reflect"
)

var (
	// ErrNilType is returned when the target type is nil.
	ErrNilType = errors.New("bindctor(extract): nil target type")
	// ErrNotFunc is returned when a constructor is not a non-nil function.
	ErrNotFunc = errors.New("bindctor(extract): constructor must be a function")
	// ErrBadReturn is returned when a constructor does not return the target
	// type, optionally followed by an error.
	ErrBadReturn = errors.New("bindctor(extract): constructor must return the target type")
	// ErrParamNames is returned when parameter names do not match the signature.
	ErrParamNames = errors.New("bindctor(extract): parameter names do not match constructor")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Option configures a type descriptor under construction.
type Option func(*state) error

// Mark configures a single constructor descriptor.
type Mark func(*apis.ConstructorDescriptor) error

type state struct {
	cfg    apis.Config
	target reflect.Type
	td     *apis.TypeDescriptor
}

// Of builds the descriptor for T.
func Of[T any](opts ...Option) (*apis.TypeDescriptor, error) {
	return For(reflect.TypeOf((*T)(nil)).Elem(), opts...)
}

// For builds the descriptor for t. Pointer types are normalized to their
// named element type. The result is validated with descriptor.Validate.
func For(t reflect.Type, opts ...Option) (*apis.TypeDescriptor, error) {
	if t == nil {
		return nil, ErrNilType
	}
	cfg := config.DefaultConfig()
	target, err := uref.Normalize(t, cfg)
	if err != nil {
		return nil, fmt.Errorf("bindctor(extract): %v: %w", t, err)
	}

	s := &state{
		cfg:    cfg,
		target: target,
		td:     &apis.TypeDescriptor{Name: uref.TypeName(target, cfg), Type: target},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if err := descriptor.Validate(s.td); err != nil {
		return nil, err
	}
	return s.td, nil
}

// Must is like For but panics on error. Intended for package-level registration.
func Must(td *apis.TypeDescriptor, err error) *apis.TypeDescriptor {
	if err != nil {
		panic(err)
	}
	return td
}

// DataLike marks the type as a data/value-like type. Such a type must
// declare exactly one primary constructor with parameters.
func DataLike() Option {
	return func(s *state) error {
		s.td.DataLike = true
		return nil
	}
}

// Named overrides the descriptor name derived from the Go type.
func Named(name string) Option {
	return func(s *state) error {
		s.td.Name = name
		return nil
	}
}

// ZeroValue declares the implicit zero-parameter constructor new(T).
func ZeroValue(marks ...Mark) Option {
	return func(s *state) error {
		c := &apis.ConstructorDescriptor{Name: "new"}
		if err := apply(c, marks); err != nil {
			return err
		}
		s.td.Constructors = append(s.td.Constructors, c)
		return nil
	}
}

// Constructor declares fn as a constructor of the target type. fn must be a
// function returning T or *T, optionally followed by an error.
// Parameters are named arg0..argN unless ParamNames is given.
func Constructor(fn any, marks ...Mark) Option {
	return func(s *state) error {
		c, err := parse(s, fn)
		if err != nil {
			return err
		}
		if err := apply(c, marks); err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		s.td.Constructors = append(s.td.Constructors, c)
		return nil
	}
}

func apply(c *apis.ConstructorDescriptor, marks []Mark) error {
	for _, m := range marks {
		if m == nil {
			continue
		}
		if err := m(c); err != nil {
			return err
		}
	}
	return nil
}

// parse analyzes fn and extracts constructor metadata.
func parse(s *state, fn any) (*apis.ConstructorDescriptor, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w, got %T", ErrNotFunc, fn)
	}
	ft := v.Type()
	name := funcName(v)

	switch ft.NumOut() {
	case 2:
		if ft.Out(1) != errorType {
			return nil, fmt.Errorf("%w: %s: second result must be error, got %v", ErrBadReturn, name, ft.Out(1))
		}
	case 1:
	default:
		return nil, fmt.Errorf("%w: %s: got %d results", ErrBadReturn, name, ft.NumOut())
	}
	out := ft.Out(0)
	if out.Kind() == reflect.Ptr && out.Elem().Kind() == reflect.Ptr {
		return nil, fmt.Errorf("%w: %s returns %v, want %v or *%v", ErrBadReturn, name, out, s.target, s.target)
	}
	if base, err := uref.Normalize(out, s.cfg); err != nil || base != s.target {
		return nil, fmt.Errorf("%w: %s returns %v, want %v or *%v", ErrBadReturn, name, out, s.target, s.target)
	}

	c := &apis.ConstructorDescriptor{
		Name:       name,
		Parameters: make([]apis.Parameter, ft.NumIn()),
		Func:       v,
	}
	for i := range ft.NumIn() {
		pt := ft.In(i)
		typeName := pt.String()
		if ft.IsVariadic() && i == ft.NumIn()-1 {
			typeName = "..." + pt.Elem().String()
		}
		c.Parameters[i] = apis.Parameter{Name: fmt.Sprintf("arg%d", i), TypeName: typeName, Type: pt}
	}
	return c, nil
}

// funcName returns the unqualified symbol of a function: "NewFoo",
// "(*Factory).New" or "TestX.func1".
func funcName(v reflect.Value) string {
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

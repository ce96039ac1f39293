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

package resolver_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/bindctor/apis"
	"dirpx.dev/bindctor/resolver"
)

func param(name, typ string) apis.Parameter {
	return apis.Parameter{Name: name, TypeName: typ}
}

// Descriptor fixtures mirroring common property-holder shapes.
var (
	fooProperties = &apis.TypeDescriptor{Name: "app.FooProperties", Constructors: []*apis.ConstructorDescriptor{
		{Name: "NewFooProperties"},
	}}
	multipleAmbiguous = &apis.TypeDescriptor{Name: "app.MultipleAmbiguousConstructors", Constructors: []*apis.ConstructorDescriptor{
		{Name: "New"},
		{Name: "NewWithFoo", Parameters: []apis.Parameter{param("foo", "string")}},
	}}
	primaryWithAutowiredSecondary = &apis.TypeDescriptor{Name: "app.PrimaryWithAutowiredSecondary", Constructors: []*apis.ConstructorDescriptor{
		{Name: "New", Primary: true, Parameters: []apis.Parameter{param("name", "string"), {Name: "counter", TypeName: "int", HasDefault: true}}},
		{Name: "NewWithFoo", Autowired: true, Parameters: []apis.Parameter{param("foo", "string")}},
	}}
	autowiredPrimaryBoundSecondary = &apis.TypeDescriptor{Name: "app.BoundSecondaryAutowiredPrimary", Constructors: []*apis.ConstructorDescriptor{
		{Name: "New", Primary: true, Autowired: true, Parameters: []apis.Parameter{param("name", "string"), param("counter", "int")}},
		{Name: "NewWithFoo", ConstructorBinding: true, Parameters: []apis.Parameter{param("foo", "string")}},
	}}
	dataWithDefaults = &apis.TypeDescriptor{Name: "app.DataWithDefaults", DataLike: true, Constructors: []*apis.ConstructorDescriptor{
		{Name: "New", Primary: true, Parameters: []apis.Parameter{
			{Name: "name", TypeName: "string", HasDefault: true},
			{Name: "counter", TypeName: "int", HasDefault: true},
		}},
	}}
	multipleWithOneBound = &apis.TypeDescriptor{Name: "app.MultipleConstructors", Constructors: []*apis.ConstructorDescriptor{
		{Name: "NewWithBar", Parameters: []apis.Parameter{param("bar", "int")}},
		{Name: "NewWithFoo", ConstructorBinding: true, Parameters: []apis.Parameter{param("foo", "string")}},
	}}
	multipleBound = &apis.TypeDescriptor{Name: "app.MultipleAnnotated", Constructors: []*apis.ConstructorDescriptor{
		{Name: "NewWithBar", ConstructorBinding: true, Parameters: []apis.Parameter{param("bar", "int")}},
		{Name: "NewWithFoo", ConstructorBinding: true, Parameters: []apis.Parameter{param("foo", "string")}},
	}}
	secondaryNoAnnotation = &apis.TypeDescriptor{Name: "app.SecondaryNoAnnotation", Constructors: []*apis.ConstructorDescriptor{
		{Name: "NewWithFoo", Parameters: []apis.Parameter{param("foo", "string")}},
	}}
)

func TestDefault_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		td       *apis.TypeDescriptor
		eligible bool
		outcome  apis.Outcome
		ctor     string
		reason   apis.Reason
	}{
		{name: "default constructor only", td: fooProperties, eligible: false, outcome: apis.NoBinding},
		{name: "default constructor only, eligible", td: fooProperties, eligible: true, outcome: apis.NoBinding},
		{name: "two unmarked constructors", td: multipleAmbiguous, eligible: true, outcome: apis.NoBinding},
		{name: "autowired secondary vetoes primary", td: primaryWithAutowiredSecondary, eligible: true, outcome: apis.NoBinding},
		{name: "autowired primary with bound secondary", td: autowiredPrimaryBoundSecondary, eligible: true,
			outcome: apis.Contradiction, reason: apis.AutowiredWithConstructorBinding},
		{name: "single constructor with defaults", td: dataWithDefaults, eligible: true, outcome: apis.Selected, ctor: "New"},
		{name: "marked foo beside bar", td: multipleWithOneBound, eligible: true, outcome: apis.Selected, ctor: "NewWithFoo"},
		{name: "marked foo beside bar, explicit only", td: multipleWithOneBound, eligible: false, outcome: apis.Selected, ctor: "NewWithFoo"},
		{name: "two marks", td: multipleBound, eligible: true, outcome: apis.Contradiction, reason: apis.MultipleConstructorBinding},
		{name: "single unmarked secondary", td: secondaryNoAnnotation, eligible: true, outcome: apis.Selected, ctor: "NewWithFoo"},
		{name: "single unmarked secondary, explicit only", td: secondaryNoAnnotation, eligible: false, outcome: apis.NoBinding},
	}

	res := resolver.Default(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := require.New(t)
			got := res.Resolve(tc.td, apis.Config{PrimaryConstructorEligible: tc.eligible})
			r.Equal(tc.outcome, got.Outcome)

			switch tc.outcome {
			case apis.Selected:
				r.Equal(tc.ctor, got.Constructor.Name)
				r.NoError(got.Err())
			case apis.NoBinding:
				r.Nil(got.Constructor)
				r.NoError(got.Err())
			case apis.Contradiction:
				r.Equal(tc.reason, got.Conflict.Reason)
				r.ErrorIs(got.Err(), apis.ErrAmbiguousBinding)
				var ae *apis.AmbiguityError
				r.True(errors.As(got.Err(), &ae))
				r.Equal(tc.td.Name, ae.TypeName)
			}

			// Idempotent: a second call yields the identical result.
			r.Equal(got, res.Resolve(tc.td, apis.Config{PrimaryConstructorEligible: tc.eligible}))
		})
	}
}

func TestDefault_NilDescriptor(t *testing.T) {
	got := resolver.Default(nil).Resolve(nil, apis.Config{PrimaryConstructorEligible: true})
	if got.Outcome != apis.NoBinding {
		t.Fatalf("Resolve(nil) = %v, want NoBinding", got.Outcome)
	}
}

type stubStrategy struct {
	name    string
	res     apis.Result
	handled bool
	calls   *int
}

func (s stubStrategy) Name() string { return s.name }

func (s stubStrategy) TryResolve(*apis.TypeDescriptor, apis.Config) (apis.Result, bool) {
	*s.calls++
	return s.res, s.handled
}

func TestNew_ChainOrderAndNilStrategies(t *testing.T) {
	var first, second, third int
	chosen := &apis.ConstructorDescriptor{Name: "NewChosen"}

	res := resolver.New(nil,
		nil,
		stubStrategy{name: "skip", calls: &first},
		stubStrategy{name: "pick", res: apis.Select(chosen), handled: true, calls: &second},
		stubStrategy{name: "never", res: apis.NoBind(), handled: true, calls: &third},
	)
	got := res.Resolve(&apis.TypeDescriptor{Name: "app.X"}, apis.Config{})
	if got.Constructor != chosen {
		t.Fatalf("Resolve: constructor = %v, want %v", got.Constructor, chosen)
	}
	if first != 1 || second != 1 || third != 0 {
		t.Fatalf("calls = (%d,%d,%d), want (1,1,0)", first, second, third)
	}

	// Nobody handles -> NoBinding.
	empty := resolver.New(nil)
	if got := empty.Resolve(&apis.TypeDescriptor{Name: "app.X"}, apis.Config{}); got.Outcome != apis.NoBinding {
		t.Fatalf("empty chain: got %v, want NoBinding", got.Outcome)
	}
}

func TestNew_LogsDecisions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res := resolver.Default(logger)
	res.Resolve(multipleWithOneBound, apis.Config{PrimaryConstructorEligible: true})
	res.Resolve(multipleBound, apis.Config{PrimaryConstructorEligible: true})

	out := buf.String()
	for _, want := range []string{
		"type=app.MultipleConstructors",
		"outcome=Selected",
		"strategy=constructor-binding",
		`constructor="NewWithFoo(foo string)"`,
		"outcome=Contradiction",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

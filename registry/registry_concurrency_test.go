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

package registry_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/bindctor/apis"
	"dirpx.dev/bindctor/config"
	"dirpx.dev/bindctor/registry"
)

// A few named types to avoid anonymous/unnamed pitfalls.
type T0 struct{}
type T1 struct{}
type T2 struct{}
type T3 struct{}
type T4 struct{}
type T5 struct{}
type T6 struct{}
type T7 struct{}
type T8 struct{}
type T9 struct{}

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	types := []reflect.Type{
		reflect.TypeOf(T0{}), reflect.TypeOf(T1{}), reflect.TypeOf(T2{}),
		reflect.TypeOf(T3{}), reflect.TypeOf(T4{}), reflect.TypeOf(T5{}),
		reflect.TypeOf(T6{}), reflect.TypeOf(T7{}), reflect.TypeOf(T8{}),
		reflect.TypeOf(T9{}),
	}
	tds := make([]*apis.TypeDescriptor, len(types))
	for i, tt := range types {
		tds[i] = typed(tt)
	}

	// Register once (sequential) to establish baseline.
	for i, td := range tds {
		if err := reg.Register(td); err != nil {
			t.Fatalf("register %s: %v", types[i], err)
		}
	}

	// Hammer with concurrent lookups and idempotent re-registrations.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				j := i % len(types)
				if got, ok := reg.Lookup(reflect.PointerTo(types[j])); !ok || got != tds[j] {
					t.Errorf("lookup failed for %v: ok=%v got=%v", types[j], ok, got)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	// Writers (idempotent re-register, alternating identical pointer and equal copy)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(types)
				td := tds[j]
				if i%2 == 1 {
					td = typed(types[j])
				}
				if err := reg.Register(td); err != nil {
					t.Errorf("re-register %v: %v", types[j], err)
					return
				}
			}
		}(w)
	}

	wg.Wait()

	// Final consistency checks.
	if reg.Count() != len(types) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(types))
	}
	got := map[reflect.Type]*apis.TypeDescriptor{}
	for _, e := range reg.Entries() {
		got[e.Type] = e
	}
	for i, tt := range types {
		if got[tt] != tds[i] {
			t.Fatalf("entry mismatch for %v: got %v want %v", tt, got[tt], tds[i])
		}
	}
}

// TestResetSnapshot ensures Reset is safe and Entries returns a stable snapshot.
func TestResetSnapshot(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	_ = reg.Register(typed(reflect.TypeOf(T0{})))
	_ = reg.Register(typed(reflect.TypeOf(T1{})))

	snap := reg.Entries() // snapshot copy expected
	reg.Reset()

	// After Reset, Count() should be 0, but previous snapshot must still be usable.
	if reg.Count() != 0 {
		t.Fatalf("count after reset: got %d want 0", reg.Count())
	}
	if len(snap) != 2 {
		t.Fatalf("snapshot length changed unexpectedly: %d", len(snap))
	}
	if snap[0].Name == "" || snap[1].Name == "" {
		t.Fatalf("snapshot contents invalid after reset")
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New(config.DefaultConfig())

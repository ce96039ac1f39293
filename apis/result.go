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
	"fmt"
	"strings"
)

// Outcome is the kind of a resolution Result.
//
// # Values
//
//   - NoBinding: no constructor applies; default-construct and mutate.
//   - Selected: bind through Result.Constructor.
//   - Contradiction: the constructor marks conflict; Result.Conflict explains why.
//
// The zero value is NoBinding so an empty Result is a valid "nothing to bind".
type Outcome int

const (
	// NoBinding selects bean-style binding: default construction followed by mutation.
	NoBinding Outcome = iota
	// Selected selects constructor binding through the returned constructor.
	Selected
	// Contradiction reports self-contradictory constructor metadata.
	Contradiction
)

// String returns a short stable identifier for o.
// Unknown values render as "Unknown(<n>)" and never panic.
func (o Outcome) String() string {
	switch o {
	case NoBinding:
		return "NoBinding"
	case Selected:
		return "Selected"
	case Contradiction:
		return "Contradiction"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

// ParseOutcome parses the textual form produced by Outcome.String,
// case-insensitively and ignoring surrounding whitespace.
func ParseOutcome(s string) (Outcome, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return NoBinding, fmt.Errorf("bindctor: empty outcome")
	}
	switch strings.ToLower(trimmed) {
	case "nobinding":
		return NoBinding, nil
	case "selected":
		return Selected, nil
	case "contradiction":
		return Contradiction, nil
	default:
		return NoBinding, fmt.Errorf("bindctor: unknown outcome %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler. Unknown values are an error
// rather than being serialized as "Unknown(...)".
func (o Outcome) MarshalText() ([]byte, error) {
	switch o {
	case NoBinding, Selected, Contradiction:
		return []byte(o.String()), nil
	default:
		return nil, fmt.Errorf("bindctor: cannot marshal unknown outcome %d", int(o))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure *o is left unchanged.
func (o *Outcome) UnmarshalText(text []byte) error {
	v, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Result is the tagged outcome of resolving a bind constructor.
//
// Exactly one of the following holds:
//   - Outcome == NoBinding: Constructor and Conflict are nil.
//   - Outcome == Selected: Constructor is non-nil.
//   - Outcome == Contradiction: Conflict is non-nil.
type Result struct {
	Outcome     Outcome
	Constructor *ConstructorDescriptor
	Conflict    *AmbiguityError
}

// Select returns a Selected result for c.
func Select(c *ConstructorDescriptor) Result {
	return Result{Outcome: Selected, Constructor: c}
}

// NoBind returns a NoBinding result.
func NoBind() Result {
	return Result{Outcome: NoBinding}
}

// Contradict returns a Contradiction result carrying err.
func Contradict(err *AmbiguityError) Result {
	return Result{Outcome: Contradiction, Conflict: err}
}

// Err returns the conflict as an error, or nil for non-contradictory results.
func (r Result) Err() error {
	if r.Outcome != Contradiction || r.Conflict == nil {
		return nil
	}
	return r.Conflict
}

// Unpack converts r into the conventional (constructor, error) pair:
// (c, nil) for Selected, (nil, nil) for NoBinding, (nil, err) for Contradiction.
func (r Result) Unpack() (*ConstructorDescriptor, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}
	if r.Outcome == Selected {
		return r.Constructor, nil
	}
	return nil, nil
}

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
	"errors"
	"fmt"
	"strings"
)

// ErrAmbiguousBinding is matched by every *AmbiguityError via errors.Is.
var ErrAmbiguousBinding = errors.New("bindctor: ambiguous binding configuration")

// Reason classifies an AmbiguityError.
type Reason int

const (
	// MultipleConstructorBinding: more than one constructor is explicitly
	// marked for constructor binding.
	MultipleConstructorBinding Reason = iota + 1
	// AutowiredWithConstructorBinding: one constructor is marked for autowiring
	// and a different one for constructor binding.
	AutowiredWithConstructorBinding
)

func (r Reason) String() string {
	switch r {
	case MultipleConstructorBinding:
		return "multiple constructors marked for constructor binding"
	case AutowiredWithConstructorBinding:
		return "autowired constructor declared alongside constructor-binding constructor"
	default:
		return fmt.Sprintf("unknown reason %d", int(r))
	}
}

// AmbiguityError reports contradictory constructor marks on a type.
// It is fatal for the type: callers should not guess a constructor.
type AmbiguityError struct {
	// TypeName identifies the offending type.
	TypeName string
	// Reason classifies the contradiction.
	Reason Reason
	// Constructors are the conflicting constructors in declaration order.
	Constructors []*ConstructorDescriptor
}

func (e *AmbiguityError) Error() string {
	names := make([]string, 0, len(e.Constructors))
	for _, c := range e.Constructors {
		names = append(names, c.String())
	}
	return fmt.Sprintf("bindctor: %s declares %s: [%s]", e.TypeName, e.Reason, strings.Join(names, "; "))
}

// Is reports whether target is ErrAmbiguousBinding.
func (e *AmbiguityError) Is(target error) bool {
	return target == ErrAmbiguousBinding
}

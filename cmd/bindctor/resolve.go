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

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"dirpx.dev/bindctor/apis"
)

type ResolveCmd struct {
	File         string `arg:"" help:"Type descriptor file (YAML or JSON)." type:"existingfile"`
	Type         string `help:"Resolve only the named type." short:"t"`
	ExplicitOnly bool   `help:"Disable implicit inference; only explicitly marked constructors are selected." name:"explicit-only"`
}

func (c *ResolveCmd) Run(g *Globals) error {
	s, err := g.open(c.File)
	if err != nil {
		return err
	}
	types, results, err := s.resolve(c.Type, s.cfg.PrimaryConstructorEligible && !c.ExplicitOnly)
	if err != nil {
		return err
	}
	return printResults(g.out, types, results)
}

type CheckCmd struct {
	File         string `arg:"" help:"Type descriptor file (YAML or JSON)." type:"existingfile"`
	ExplicitOnly bool   `help:"Disable implicit inference." name:"explicit-only"`
}

var errContradictions = errors.New("contradictory constructor marks")

func (c *CheckCmd) Run(g *Globals) error {
	s, err := g.open(c.File)
	if err != nil {
		return err
	}
	types, results, err := s.resolve("", s.cfg.PrimaryConstructorEligible && !c.ExplicitOnly)
	if err != nil {
		return err
	}
	var bad int
	for _, r := range results {
		if err := r.Err(); err != nil {
			bad++
			fmt.Fprintln(g.out, err)
		}
	}
	if bad > 0 {
		return fmt.Errorf("%w in %d of %d types", errContradictions, bad, len(types))
	}
	fmt.Fprintf(g.out, "ok: %d types\n", len(types))
	return nil
}

// printResults writes one aligned row per type: name, outcome and either the
// selected constructor or the contradiction reason.
func printResults(w io.Writer, types []*apis.TypeDescriptor, results []apis.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tOUTCOME\tDETAIL")
	for i, td := range types {
		r := results[i]
		detail := "-"
		switch r.Outcome {
		case apis.Selected:
			detail = r.Constructor.String()
		case apis.Contradiction:
			detail = r.Conflict.Reason.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", td.Name, r.Outcome, detail)
	}
	return tw.Flush()
}

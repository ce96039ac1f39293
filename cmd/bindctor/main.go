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

// Command bindctor resolves bind constructors for type descriptor files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Globals

	Version VersionCmd `cmd:"" help:"Print version information."`
	Resolve ResolveCmd `cmd:"" help:"Print the bind constructor chosen for each type."`
	Check   CheckCmd   `cmd:"" help:"Fail when any type declares contradictory constructor marks."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	_, err := fmt.Fprintln(g.out, Version())
	return err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args and runs the selected command. It returns the process
// exit code: 0 on success, 1 when the command fails, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bindctor"),
		kong.Description("Resolve configuration-binding constructors from type descriptors."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "bindctor: %v\n", err)
		return 2
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "bindctor: %v\n", err)
		return 2
	}
	cli.Globals.out, cli.Globals.errOut = stdout, stderr
	if err := ctx.Run(&cli.Globals); err != nil {
		fmt.Fprintf(stderr, "bindctor: %v\n", err)
		return 1
	}
	return 0
}

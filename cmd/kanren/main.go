// Command kanren is a small demo CLI over the kanren engine,
// restructured from the teacher's single func main() dispatch
// (cmd/example/main.go) onto github.com/hashicorp/cli's CLI/Command
// registration pattern, the way hashicorp-nomad wires its own
// subcommands. It exists to give the library a runnable surface: query
// the family-tree example and toggle tracing from the shell.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	"github.com/logicgo/kanren/examples/familytree"
	"github.com/logicgo/kanren/kanren"
	"github.com/logicgo/kanren/term"
)

const appName = "kanren"

func main() {
	c := cli.NewCLI(appName, version)
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"grandparent": func() (cli.Command, error) { return &grandparentCommand{}, nil },
		"sibling":     func() (cli.Command, error) { return &siblingCommand{}, nil },
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitStatus)
}

const version = "0.1.0"

// grandparentCommand queries familytree.Grandparent(X, name) and
// prints every solution's X binding, one per line, in derivation
// order.
type grandparentCommand struct{}

func (c *grandparentCommand) Help() string {
	return "Usage: kanren grandparent <name>\n\n  List every grandparent of <name>."
}

func (c *grandparentCommand) Synopsis() string {
	return "List the grandparents of a family-tree member"
}

func (c *grandparentCommand) Run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}
	if os.Getenv("KANREN_TRACE") != "" {
		kanren.TraceOn()
		defer kanren.TraceOff()
	}

	ctx := context.Background()
	x := term.NewVar("X")
	sols := kanren.RunAll(ctx, familytree.Grandparent(x, term.NewScalar(args[0])), kanren.Vars{"X": x})
	if len(sols) == 0 {
		fmt.Println("no grandparents found")
		return 0
	}
	for _, s := range sols {
		v, err := s.Get("X")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(v.String())
	}
	return 0
}

// siblingCommand queries familytree.Sibling(name, Y) and prints every
// solution's Y binding.
type siblingCommand struct{}

func (c *siblingCommand) Help() string {
	return "Usage: kanren sibling <name>\n\n  List every sibling of <name>."
}

func (c *siblingCommand) Synopsis() string {
	return "List the siblings of a family-tree member"
}

func (c *siblingCommand) Run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}

	ctx := context.Background()
	y := term.NewVar("Y")
	sols := kanren.RunAll(ctx, familytree.Sibling(term.NewScalar(args[0]), y), kanren.Vars{"Y": y})
	if len(sols) == 0 {
		fmt.Println("no siblings found")
		return 0
	}
	for _, s := range sols {
		v, err := s.Get("Y")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(v.String())
	}
	return 0
}

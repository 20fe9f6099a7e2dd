// consoleutil-admin inspects the form type table and the editor ID hooks
// of an in-memory host.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rodaine/table"
	"github.com/zond/consoleutil/editorid"
	"github.com/zond/consoleutil/formtype"
	"github.com/zond/consoleutil/fuzzy"
	"github.com/zond/consoleutil/server"
)

func main() {
	world := flag.String("world", "", "World seed file for the run command.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [args...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  formtypes [match]  List form types, optionally matching code or name\n")
		fmt.Fprintf(os.Stderr, "  hooks [match]      List the classes whose editor IDs are captured\n")
		fmt.Fprintf(os.Stderr, "  run <line>         Run a console line against a seeded host\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	var err error
	switch args[0] {
	case "formtypes":
		err = formTypes(argOr(args, 1))
	case "hooks":
		err = hooks(argOr(args, 1))
	case "run":
		err = run(*world, strings.Join(args[1:], " "))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func argOr(args []string, idx int) string {
	if idx < len(args) {
		return args[idx]
	}
	return ""
}

func formTypes(match string) error {
	names := formtype.Table()
	all := make([]formtype.FormType, names.Len())
	for i := range all {
		all[i] = formtype.FormType(i)
	}
	matches, err := fuzzy.Enumerate(context.Background(), fuzzy.Fold(match), all, func(ft formtype.FormType) []string {
		code, _ := names.Code(ft)
		return []string{code, ft.String()}
	})
	if err != nil {
		return err
	}
	t := table.New("Index", "Code").WithWriter(os.Stdout)
	for _, ft := range matches {
		code, _ := names.Code(ft)
		t.AddRow(int(ft), code)
	}
	t.Print()
	return nil
}

func hooks(match string) error {
	srv, err := server.New(server.DefaultConfig())
	if err != nil {
		return err
	}
	registry := srv.Registry()
	matches, err := fuzzy.Enumerate(context.Background(), fuzzy.Fold(match), registry.Installed(), func(name string) []string {
		return []string{name}
	})
	if err != nil {
		return err
	}
	t := table.New("Class", "Form Type").WithWriter(os.Stdout)
	for _, name := range matches {
		c, found := srv.Process().Class(name)
		if !found {
			continue
		}
		code, _ := formtype.Table().Code(c.Type)
		t.AddRow(name, code)
	}
	t.Print()
	registry.Cache().With(func(a *editorid.Accessor) {
		fmt.Printf("\n%d editor IDs captured\n", a.Len())
	})
	return nil
}

func run(world string, line string) error {
	config := server.DefaultConfig()
	config.World = world
	srv, err := server.New(config)
	if err != nil {
		return err
	}
	p := srv.Process()
	p.Transcript.Clear()
	p.Transcript.Attach(os.Stdout)
	defer p.Transcript.Detach(os.Stdout)
	if err := p.Run(context.Background(), line); err != nil {
		return err
	}
	p.Tick()
	return nil
}

// Command ljvalidate validates a JSON instance file against a JSON Schema
// file and prints the result, in the spirit of the small command-line
// front ends that sit next to a library's core package.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ljschema/ljschema"
	"github.com/ljschema/ljschema/schemafile"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("ljvalidate", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: ljvalidate [-v] <schema.json> <instance.json>")
		return 2
	}
	schemaPath, instancePath := fs.Arg(0), fs.Arg(1)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	schemafile.SetLogger(logger)

	schema, err := schemafile.LoadFile(os.DirFS("."), schemaPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ljvalidate:", err)
		return 1
	}
	instance, err := schemafile.LoadFile(os.DirFS("."), instancePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ljvalidate:", err)
		return 1
	}

	v := ljschema.NewValidator(ljschema.WithLogger(logger))
	out, err := v.Validate(schema, instance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ljvalidate:", err)
		return 1
	}
	if out.Valid {
		fmt.Println("valid")
		return 0
	}
	fmt.Println("invalid")
	for _, u := range out.Errors {
		fmt.Printf("  %s: %s\n", u.InstanceLocation, u.AbsoluteKeywordLocation)
	}
	return 1
}

package main

import (
	"os"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"

	"github.com/fuzzygrep/fuzzygrep/cmd/fuzzygrep/internal/cli"
)

func main() {
	opts, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		astilog.Fatal(errors.Wrap(err, "parsing arguments failed"))
	}
	if err := cli.Run(opts, os.Stdin, os.Stdout); err != nil {
		astilog.Fatal(errors.Wrap(err, "running fuzzygrep failed"))
	}
}

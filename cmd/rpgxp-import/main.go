// Command rpgxp-import runs the import pipeline end to end against a
// single configuration file. It exists only to make the library
// runnable; a real CLI driver (progress UI, subcommands, a --quick
// sampling flag) is out of scope.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/andrewfoote/rpgxp-go/config"
	"github.com/andrewfoote/rpgxp-go/pipeline"
)

var cli struct {
	Config string `arg:"" help:"Path to the project config file" type:"existingfile"`
}

func main() {
	kong.Parse(&cli)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := pipeline.Run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var reportFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "member",
		Usage: "member whose grandparent is reported (defaults to the first grandchild of the root)",
	},
	&cli.BoolFlag{
		Name:  "tree-only",
		Usage: "only print the tree diagram",
	},
}

func run(args []string) error {

	app := cli.App{
		Name:    "famtree",
		Usage:   "build family trees and query them",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "info",
			EnvVars: []string{"FAMTREE_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log output format: text or json",
			Value:   "text",
			EnvVars: []string{"FAMTREE_LOG_FORMAT"},
		},
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdBuild,
		cmdRandom,
	}
	return app.Run(args)
}

// Package cmd implements the treelib command line.
// It is a demonstration frontend; the actual contract lives in the
// tree package.
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/sahib/treelib"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
}

// Run executes the command line in `args` and returns an exit code.
func Run(args []string) int {
	exitCode := Success

	// urfave/cli wants handlers that return errors; ours hand back
	// exit codes like the C tradition does. This adapter bridges it.
	withCode := func(handler func(ctx *cli.Context) int) func(ctx *cli.Context) error {
		return func(ctx *cli.Context) error {
			exitCode = handler(ctx)
			return nil
		}
	}

	app := cli.NewApp()
	app.Name = "treelib"
	app.Usage = "build, edit and persist small binary trees"
	app.Version = treelib.VersionString()

	plainFlag := cli.BoolFlag{
		Name:  "plain",
		Usage: "Render with plain indentation instead of box drawing runes",
	}

	app.Commands = []cli.Command{
		{
			Name:      "init",
			Category:  "file",
			Usage:     "Create a tree file holding a single root node",
			ArgsUsage: "<file> <value>",
			Action:    withCode(handleInit),
		}, {
			Name:      "show",
			Category:  "file",
			Usage:     "Load a tree file and render it",
			ArgsUsage: "<file>",
			Flags:     []cli.Flag{plainFlag},
			Action:    withCode(handleShow),
		}, {
			Name:      "add",
			Category:  "edit",
			Usage:     "Insert a new node at an empty slot",
			ArgsUsage: "<file> <path> <value>",
			Flags:     []cli.Flag{plainFlag},
			Action:    withCode(handleAdd),
		}, {
			Name:      "del",
			Category:  "edit",
			Usage:     "Delete the node at a path, including its subtree",
			ArgsUsage: "<file> <path>",
			Flags:     []cli.Flag{plainFlag},
			Action:    withCode(handleDel),
		}, {
			Name:      "edit",
			Category:  "edit",
			Usage:     "Replace the value of an existing node",
			ArgsUsage: "<file> <path> <value>",
			Flags:     []cli.Flag{plainFlag},
			Action:    withCode(handleEdit),
		}, {
			Name:     "demo",
			Category: "misc",
			Usage:    "Run a scripted walkthrough of all operations",
			Flags:    []cli.Flag{plainFlag},
			Action:   withCode(handleDemo),
		},
	}

	if err := app.Run(args); err != nil {
		log.Errorf("cli: %v", err)
		return BadArgs
	}

	return exitCode
}

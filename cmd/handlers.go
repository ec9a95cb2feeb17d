package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	e "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/sahib/treelib/tree"
)

// parseValue guesses a scalar type for a command line argument.
// Ints win over floats win over plain strings.
func parseValue(s string) interface{} {
	if iv, err := strconv.Atoi(s); err == nil {
		return iv
	}

	if fv, err := strconv.ParseFloat(s, 64); err == nil {
		return fv
	}

	return s
}

func codeForErr(err error) int {
	cause := e.Cause(err)
	switch {
	case tree.IsPathError(err):
		return BadPath
	case cause == tree.ErrOccupied,
		cause == tree.ErrMissingNode,
		cause == tree.ErrRootOperation:
		return BadPath
	default:
		return BadFile
	}
}

func loadTree(path string) (*tree.Node, int) {
	root, err := tree.FromYamlFile(path)
	if err != nil {
		log.Errorf("load %s: %v", path, err)
		return nil, codeForErr(err)
	}

	return root, Success
}

func saveAndShow(ctx *cli.Context, root *tree.Node, path string) int {
	if err := tree.ToYamlFile(root, path); err != nil {
		log.Errorf("save %s: %v", path, err)
		return BadFile
	}

	showTree(root, ctx.Bool("plain"))
	return Success
}

func handleInit(ctx *cli.Context) int {
	args := ctx.Args()
	if len(args) < 2 {
		log.Error("usage: init <file> <value>")
		return BadArgs
	}

	root := tree.New(parseValue(args[1]))
	if err := tree.ToYamlFile(root, args[0]); err != nil {
		log.Errorf("save %s: %v", args[0], err)
		return BadFile
	}

	return Success
}

func handleShow(ctx *cli.Context) int {
	args := ctx.Args()
	if len(args) < 1 {
		log.Error("usage: show <file>")
		return BadArgs
	}

	root, code := loadTree(args[0])
	if code != Success {
		return code
	}

	showTree(root, ctx.Bool("plain"))
	return Success
}

func handleAdd(ctx *cli.Context) int {
	args := ctx.Args()
	if len(args) < 3 {
		log.Error("usage: add <file> <path> <value>")
		return BadArgs
	}

	root, code := loadTree(args[0])
	if code != Success {
		return code
	}

	if err := tree.Add(root, args[1], parseValue(args[2])); err != nil {
		log.Errorf("add: %v", err)
		return codeForErr(err)
	}

	return saveAndShow(ctx, root, args[0])
}

func handleDel(ctx *cli.Context) int {
	args := ctx.Args()
	if len(args) < 2 {
		log.Error("usage: del <file> <path>")
		return BadArgs
	}

	root, code := loadTree(args[0])
	if code != Success {
		return code
	}

	if err := tree.Delete(root, args[1]); err != nil {
		log.Errorf("del: %v", err)
		return codeForErr(err)
	}

	return saveAndShow(ctx, root, args[0])
}

func handleEdit(ctx *cli.Context) int {
	args := ctx.Args()
	if len(args) < 3 {
		log.Error("usage: edit <file> <path> <value>")
		return BadArgs
	}

	root, code := loadTree(args[0])
	if code != Success {
		return code
	}

	if err := tree.Edit(root, args[1], parseValue(args[2])); err != nil {
		log.Errorf("edit: %v", err)
		return codeForErr(err)
	}

	return saveAndShow(ctx, root, args[0])
}

func handleDemo(ctx *cli.Context) int {
	plain := ctx.Bool("plain")

	root := tree.New(10)
	fmt.Println("Initial tree:")
	showTree(root, plain)

	inserts := []struct {
		path  string
		value int
	}{
		{"L", 5},
		{"R", 15},
		{"LL", 3},
		{"LR", 7},
		{"RL", 12},
		{"RR", 18},
	}

	for _, ins := range inserts {
		if err := tree.Add(root, ins.path, ins.value); err != nil {
			log.Errorf("add %s: %v", ins.path, err)
			return UnknownError
		}
	}

	fmt.Println("\nTree after additions:")
	showTree(root, plain)

	fd, err := ioutil.TempFile("", "treelib-demo")
	if err != nil {
		log.Errorf("temp file: %v", err)
		return UnknownError
	}

	yamlFile := fd.Name()
	if err := fd.Close(); err != nil {
		log.Errorf("temp file: %v", err)
		return UnknownError
	}
	defer os.Remove(yamlFile)

	if err := tree.ToYamlFile(root, yamlFile); err != nil {
		log.Errorf("save %s: %v", yamlFile, err)
		return BadFile
	}

	loaded, err := tree.FromYamlFile(yamlFile)
	if err != nil {
		log.Errorf("load %s: %v", yamlFile, err)
		return BadFile
	}

	fmt.Printf("\nTree loaded back from '%s':\n", yamlFile)
	showTree(loaded, plain)

	if err := tree.Edit(loaded, "RL", 13); err != nil {
		log.Errorf("edit RL: %v", err)
		return UnknownError
	}

	if err := tree.Delete(loaded, "L"); err != nil {
		log.Errorf("delete L: %v", err)
		return UnknownError
	}

	fmt.Println("\nAfter editing RL to 13 and deleting the left subtree:")
	showTree(loaded, plain)
	return Success
}

package main

import (
	"os"

	"github.com/sahib/treelib/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args))
}

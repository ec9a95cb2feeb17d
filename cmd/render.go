package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sahib/treelib/tree"
)

var (
	treeRunePipe   = "│"
	treeRuneTri    = "├"
	treeRuneBar    = "──"
	treeRuneCorner = "└"
)

// showTree prints `root` to stdout. The default form uses box drawing
// runes and color; `plain` falls back to the indented form of
// tree.Dump.
func showTree(root *tree.Node, plain bool) {
	if plain {
		tree.Dump(root, os.Stdout)
		return
	}

	printFancy(root, "", "", true)
}

func formatValue(nd *tree.Node) string {
	if nd.Left == nil && nd.Right == nil {
		return fmt.Sprintf("%v", nd.Value)
	}

	return color.GreenString("%v", nd.Value)
}

func printFancy(nd *tree.Node, slot, prefix string, isLast bool) {
	if nd == nil {
		return
	}

	if slot == "" {
		fmt.Printf("%s %s\n", color.MagentaString("•"), formatValue(nd))
	} else {
		connector := treeRuneTri + treeRuneBar
		if isLast {
			connector = treeRuneCorner + treeRuneBar
		}

		fmt.Printf(
			"%s%s%s %s\n",
			prefix, connector,
			color.CyanString(slot), formatValue(nd),
		)
	}

	childPrefix := prefix
	if slot != "" {
		if isLast {
			childPrefix += "   "
		} else {
			childPrefix += treeRunePipe + "  "
		}
	}

	type childSlot struct {
		slot string
		nd   *tree.Node
	}

	var children []childSlot
	if nd.Left != nil {
		children = append(children, childSlot{"L", nd.Left})
	}
	if nd.Right != nil {
		children = append(children, childSlot{"R", nd.Right})
	}

	for idx, child := range children {
		printFancy(child.nd, child.slot, childPrefix, idx == len(children)-1)
	}
}

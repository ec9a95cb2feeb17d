package tree

import (
	"fmt"
	"io"
	"strings"
)

// Number of spaces per indentation level in Render/Dump output.
const indentWidth = 4

// Walk visits every node below `root` in pre-order. `slot` is "" for
// the root and "L" or "R" for children. Absent children are skipped.
// Walking a nil root visits nothing. Every call starts over at the
// root, so a Walk can be repeated as often as needed.
func Walk(root *Node, visit func(nd *Node, depth int, slot string)) {
	walk(root, 0, "", visit)
}

func walk(nd *Node, depth int, slot string, visit func(*Node, int, string)) {
	if nd == nil {
		return
	}

	visit(nd, depth, slot)
	walk(nd.Left, depth+1, "L", visit)
	walk(nd.Right, depth+1, "R", visit)
}

// Render returns one line of text per node: the root as "Root:<value>",
// children as "L---<value>" or "R---<value>", indented by their depth.
// There are no placeholder lines for absent children. A nil root
// renders to no lines at all.
func Render(root *Node) []string {
	var lines []string

	Walk(root, func(nd *Node, depth int, slot string) {
		label := "Root:"
		if slot != "" {
			label = slot + "---"
		}

		indent := strings.Repeat(" ", depth*indentWidth)
		lines = append(lines, fmt.Sprintf("%s%s%v", indent, label, nd.Value))
	})

	return lines
}

// Dump writes the Render form of `root` to `w`, one line per node.
func Dump(root *Node, w io.Writer) error {
	for _, line := range Render(root) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

package tree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	require.Empty(t, Render(nil))

	buf := bytes.NewBuffer(nil)
	require.NoError(t, Dump(nil, buf))
	require.Equal(t, "", buf.String())
}

func TestRenderSingleNode(t *testing.T) {
	lines := Render(New(10))
	require.Equal(t, []string{"Root:10"}, lines)
}

func TestRenderScenario(t *testing.T) {
	root := buildScenarioTree(t)

	expected := []string{
		"Root:10",
		"    L---5",
		"        L---3",
		"        R---7",
		"    R---15",
		"        L---12",
		"        R---18",
	}
	require.Equal(t, expected, Render(root))

	// Rendering restarts from scratch on every call.
	require.Equal(t, expected, Render(root))

	buf := bytes.NewBuffer(nil)
	require.NoError(t, Dump(root, buf))
	require.Equal(t, strings.Join(expected, "\n")+"\n", buf.String())
}

func TestRenderSkipsAbsentChildren(t *testing.T) {
	root := New(1)
	require.NoError(t, Add(root, "R", 2))

	// No placeholder line for the absent left child.
	require.Equal(t, []string{"Root:1", "    R---2"}, Render(root))
}

func TestWalkOrder(t *testing.T) {
	root := buildScenarioTree(t)

	var visited []string
	Walk(root, func(nd *Node, depth int, slot string) {
		visited = append(visited, slot)
	})

	require.Equal(t, []string{"", "L", "L", "R", "R", "L", "R"}, visited)
}

package tree

import (
	"os"
	"testing"

	e "github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/sahib/treelib/util/testutil"
)

// The document from the docs, in flow style on purpose.
const exampleDoc = `
value: 10
left: {value: 5, left: {value: 3}, right: {value: 7}}
right: {value: 15, right: {value: 18}}
`

func TestRoundTrip(t *testing.T) {
	root := New(10)
	require.NoError(t, Add(root, "L", 2.5))
	require.NoError(t, Add(root, "R", "fifteen"))
	require.NoError(t, Add(root, "LL", true))
	require.NoError(t, Add(root, "RR", -42))

	data, err := Marshal(root)
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, Equal(root, back))
}

func TestRoundTripSingleNode(t *testing.T) {
	data, err := Marshal(New("lonely"))
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, Equal(New("lonely"), back))
}

func TestMarshalNilRoot(t *testing.T) {
	_, err := Marshal(nil)
	require.Equal(t, ErrNoTree, e.Cause(err))
}

func TestMarshalOmitsAbsentChildren(t *testing.T) {
	root := New(1)
	require.NoError(t, Add(root, "R", 2))

	data, err := Marshal(root)
	require.NoError(t, err)
	require.NotContains(t, string(data), "left")
	require.Contains(t, string(data), "right")
}

func TestUnmarshalExampleDoc(t *testing.T) {
	root, err := Unmarshal([]byte(exampleDoc))
	require.NoError(t, err)

	expected := New(10)
	require.NoError(t, Add(expected, "L", 5))
	require.NoError(t, Add(expected, "LL", 3))
	require.NoError(t, Add(expected, "LR", 7))
	require.NoError(t, Add(expected, "R", 15))
	require.NoError(t, Add(expected, "RR", 18))
	require.True(t, Equal(expected, root))

	// 15 has a right child only.
	fifteen, err := Get(root, "R")
	require.NoError(t, err)
	require.Nil(t, fifteen.Left)
	require.NotNil(t, fifteen.Right)
}

func TestUnmarshalBadDocs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"top-level-list", "- 1\n- 2\n"},
		{"top-level-scalar", "just a string\n"},
		{"missing-value", "left: {value: 1}\n"},
		{"nested-missing-value", "value: 1\nleft: {right: {value: 2}}\n"},
		{"nested-scalar-child", "value: 1\nleft: 2\n"},
		{"unparseable", "value: [\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			root, err := Unmarshal([]byte(test.doc))
			require.Nil(t, root)
			require.True(t, IsFormatError(err), "%v", err)
		})
	}
}

func TestUnmarshalIgnoresUnknownKeys(t *testing.T) {
	root, err := Unmarshal([]byte("value: 1\ncolor: blue\nright: {value: 2}\n"))
	require.NoError(t, err)
	require.Equal(t, 1, root.Value)
	require.Equal(t, 2, root.Right.Value)
}

func TestUnmarshalNullChildIsAbsent(t *testing.T) {
	root, err := Unmarshal([]byte("value: 1\nleft: null\n"))
	require.NoError(t, err)
	require.Nil(t, root.Left)
}

func TestYamlFileRoundTrip(t *testing.T) {
	path := testutil.TempYamlFile(t, "")
	defer testutil.Remover(t, path)

	root := buildScenarioTree(t)
	require.NoError(t, ToYamlFile(root, path))

	back, err := FromYamlFile(path)
	require.NoError(t, err)
	require.True(t, Equal(root, back))
}

func TestFromYamlFileExampleDoc(t *testing.T) {
	path := testutil.TempYamlFile(t, exampleDoc)
	defer testutil.Remover(t, path)

	root, err := FromYamlFile(path)
	require.NoError(t, err)
	require.Equal(t, 10, root.Value)
	require.Equal(t, 7, root.Left.Right.Value)
}

func TestFromYamlFileMissing(t *testing.T) {
	_, err := FromYamlFile("/this/does/not/exist.yaml")
	require.Error(t, err)
	require.True(t, os.IsNotExist(e.Cause(err)))
}

func TestToYamlFileBadDestination(t *testing.T) {
	err := ToYamlFile(New(1), "/this/does/not/exist/tree.yaml")
	require.Error(t, err)
}

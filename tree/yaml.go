package tree

import (
	"io/ioutil"

	e "github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// yamlNode mirrors the on-disk mapping of a single node.
type yamlNode struct {
	Value interface{} `yaml:"value"`
	Left  *yamlNode   `yaml:"left,omitempty"`
	Right *yamlNode   `yaml:"right,omitempty"`
}

func toYamlNode(nd *Node) *yamlNode {
	if nd == nil {
		return nil
	}

	return &yamlNode{
		Value: nd.Value,
		Left:  toYamlNode(nd.Left),
		Right: toYamlNode(nd.Right),
	}
}

// Marshal converts the tree below `root` into its YAML document form.
// Every node becomes a mapping with a "value" key; "left" and "right"
// keys appear only when that child exists. A nil root has no document
// form and fails with ErrNoTree.
func Marshal(root *Node) ([]byte, error) {
	if root == nil {
		return nil, ErrNoTree
	}

	data, err := yaml.Marshal(toYamlNode(root))
	if err != nil {
		return nil, e.Wrap(err, "marshal tree")
	}

	return data, nil
}

// Unmarshal parses a YAML document into a tree. The document must be a
// mapping carrying a "value" key at every node; "left"/"right" keys
// hold the children. Unrecognized keys are ignored, an explicit null
// child counts as absent. Nothing is returned on failure; there are no
// partial trees.
func Unmarshal(data []byte) (*Node, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}

	return fromYamlValue(raw)
}

func fromYamlValue(raw interface{}) (*Node, error) {
	mapping, ok := raw.(map[interface{}]interface{})
	if !ok {
		return nil, &FormatError{Reason: "node is not a mapping"}
	}

	value, ok := mapping["value"]
	if !ok {
		return nil, &FormatError{Reason: "node has no value key"}
	}

	nd := New(value)

	if rawLeft, ok := mapping["left"]; ok && rawLeft != nil {
		left, err := fromYamlValue(rawLeft)
		if err != nil {
			return nil, err
		}

		nd.Left = left
	}

	if rawRight, ok := mapping["right"]; ok && rawRight != nil {
		right, err := fromYamlValue(rawRight)
		if err != nil {
			return nil, err
		}

		nd.Right = right
	}

	return nd, nil
}

// FromYamlFile reads the document at `path` and builds a tree from it.
// The file is fully read and closed before this returns.
func FromYamlFile(path string) (*Node, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, e.Wrapf(err, "read tree file %s", path)
	}

	return Unmarshal(data)
}

// ToYamlFile writes the document form of `root` to `path`, overwriting
// whatever was there before.
func ToYamlFile(root *Node, path string) error {
	data, err := Marshal(root)
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return e.Wrapf(err, "write tree file %s", path)
	}

	return nil
}

package tree

import (
	e "github.com/pkg/errors"
)

// Add creates a new leaf holding `value` in the slot addressed by
// `path`. The slot must be currently empty; inserting over an existing
// node fails with ErrOccupied and leaves the tree untouched. The root
// cannot be created this way, an empty path fails with
// ErrRootOperation.
func Add(root *Node, path string, value interface{}) error {
	if root == nil {
		return ErrNoTree
	}

	steps, err := ParsePath(path)
	if err != nil {
		return err
	}

	if len(steps) == 0 {
		return ErrRootOperation
	}

	parent, last, err := resolveParent(root, steps)
	if err != nil {
		return e.Wrapf(err, "add %q", path)
	}

	if parent.Child(last) != nil {
		return ErrOccupied
	}

	parent.setChild(last, New(value))
	return nil
}

// Delete unlinks the node addressed by `path` from its parent,
// discarding the whole subtree below it. The root cannot be deleted
// this way; the caller owns the root reference directly.
func Delete(root *Node, path string) error {
	if root == nil {
		return ErrNoTree
	}

	steps, err := ParsePath(path)
	if err != nil {
		return err
	}

	if len(steps) == 0 {
		return ErrRootOperation
	}

	parent, last, err := resolveParent(root, steps)
	if err != nil {
		return e.Wrapf(err, "delete %q", path)
	}

	if parent.Child(last) == nil {
		return ErrMissingNode
	}

	parent.setChild(last, nil)
	return nil
}

// Edit replaces the value of the node addressed by `path` in place,
// leaving its children alone. The empty path edits the root.
func Edit(root *Node, path string, value interface{}) error {
	nd, err := Get(root, path)
	if err != nil {
		return err
	}

	nd.Value = value
	return nil
}

// Get returns the node addressed by `path`, the root for the empty path.
func Get(root *Node, path string) (*Node, error) {
	if root == nil {
		return nil, ErrNoTree
	}

	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	nd, err := resolve(root, steps)
	if err != nil {
		return nil, e.Wrapf(err, "lookup %q", path)
	}

	return nd, nil
}

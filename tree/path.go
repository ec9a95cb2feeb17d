package tree

// Step selects one of the two child slots of a node.
type Step uint8

const (
	// Left selects the left child slot.
	Left Step = iota

	// Right selects the right child slot.
	Right
)

func (s Step) String() string {
	if s == Left {
		return "L"
	}
	return "R"
}

// Path is an ordered sequence of steps locating a node relative to a
// root. The empty path denotes the root itself.
type Path []Step

// ParsePath converts a path string like "LLR" into a Path. Path strings
// are validated here once; everything after this works on typed steps.
func ParsePath(s string) (Path, error) {
	path := make(Path, 0, len(s))

	for idx := 0; idx < len(s); idx++ {
		switch s[idx] {
		case 'L':
			path = append(path, Left)
		case 'R':
			path = append(path, Right)
		default:
			return nil, &PathError{Reason: ReasonInvalidChar, Pos: idx}
		}
	}

	return path, nil
}

func (p Path) String() string {
	buf := make([]byte, len(p))
	for idx, step := range p {
		buf[idx] = step.String()[0]
	}

	return string(buf)
}

// resolve walks `path` down from `root` and returns the addressed node.
// A missing intermediate child is a broken path; a missing node at the
// very end is ErrMissingNode.
func resolve(root *Node, path Path) (*Node, error) {
	curr := root
	for idx, step := range path {
		child := curr.Child(step)
		if child == nil {
			if idx == len(path)-1 {
				return nil, ErrMissingNode
			}
			return nil, &PathError{Reason: ReasonBrokenPath, Pos: idx}
		}

		curr = child
	}

	return curr, nil
}

// resolveParent walks all but the last step of `path` and returns the
// parent of the addressed slot together with the final step selecting
// it. `path` must not be empty.
func resolveParent(root *Node, path Path) (*Node, Step, error) {
	curr := root
	for idx, step := range path[:len(path)-1] {
		child := curr.Child(step)
		if child == nil {
			return nil, 0, &PathError{Reason: ReasonBrokenPath, Pos: idx}
		}

		curr = child
	}

	return curr, path[len(path)-1], nil
}

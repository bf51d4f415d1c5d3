package familytree

import (
	"fmt"
	"slices"
)

var (
	// ErrNotFound is returned when an operation names a member that is not in the tree.
	ErrNotFound = fmt.Errorf("familytree: member not found")

	// ErrIsRoot is returned when removing a member that has no parent.
	ErrIsRoot = fmt.Errorf("familytree: member has no parent")

	// ErrNoGrandKids is returned by MostGrandKids when no member below the receiver has a grandchild.
	ErrNoGrandKids = fmt.Errorf("familytree: no member has grandchildren")
)

// Node is one family member.
type Node struct {
	name     string
	parent   *Node
	children []*Node
}

// NewRoot creates a parentless node, the first member of a new tree.
func NewRoot(name string) *Node {
	return &Node{name: name}
}

func (n *Node) Name() string {
	return n.name
}

// Parent returns the member's parent, or nil for a root. A detached node keeps the parent it was removed from.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the member's children, in the order they were added.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

func (n *Node) IsRoot() bool {
	return n.parent == nil
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Root follows parent links up to the parentless node.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Depth is the number of parent hops from n to its root.
func (n *Node) Depth() int {
	d := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		d++
	}
	return d
}

// Size counts n and every member reachable below it.
func (n *Node) Size() int {
	count := 0
	n.walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// AddChild attaches a new member named childName under the member named parentName, searching from n.
func (n *Node) AddChild(parentName, childName string) (*Node, error) {
	parent := n.Find(parentName)
	if parent == nil {
		return nil, fmt.Errorf("adding %q under %q: %w", childName, parentName, ErrNotFound)
	}

	child := &Node{
		name:   childName,
		parent: parent,
	}
	parent.children = append(parent.children, child)
	return child, nil
}

// RemoveChild detaches the member named childName from its parent. The detached
// subtree is left intact, including the removed node's own parent pointer, but
// is no longer reachable from the rest of the tree.
func (n *Node) RemoveChild(childName string) error {
	target := n.Find(childName)
	if target == nil {
		return fmt.Errorf("removing %q: %w", childName, ErrNotFound)
	}
	if target.parent == nil {
		return fmt.Errorf("removing %q: %w", childName, ErrIsRoot)
	}

	siblings := target.parent.children
	idx := slices.Index(siblings, target)
	if idx < 0 {
		// already detached from this parent by an earlier removal
		return fmt.Errorf("removing %q: %w", childName, ErrNotFound)
	}
	target.parent.children = slices.Delete(siblings, idx, idx+1)
	return nil
}

// Find returns the first member named name in breadth-first order, starting
// with n itself, or nil if there is none.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.walk(func(cur *Node) bool {
		if cur.name == name {
			found = cur
			return false
		}
		return true
	})
	return found
}

// Members lists the names of n and everyone below it in breadth-first order.
func (n *Node) Members() []string {
	var names []string
	n.walk(func(cur *Node) bool {
		names = append(names, cur.name)
		return true
	})
	return names
}

package familytree

import (
	"fmt"
)

// NoGrandParent is returned by GrandParent when the member is fewer than two generations below a root.
const NoGrandParent = "No Grandparent"

const grandParentLevel = 2

// GrandParent returns the name of the member two generations above the member
// named name, or NoGrandParent when there is no such ancestor.
func (n *Node) GrandParent(name string) (string, error) {
	cur := n.Find(name)
	if cur == nil {
		return "", fmt.Errorf("grandparent of %q: %w", name, ErrNotFound)
	}

	for steps := grandParentLevel; steps > 0 && cur != nil; steps-- {
		cur = cur.parent
	}
	if cur == nil {
		return NoGrandParent, nil
	}
	return cur.name, nil
}

// hasNoSiblings reports whether n is the sole child of its parent. A root
// counts as having no siblings.
func hasNoSiblings(n *Node) bool {
	return n.parent == nil || len(n.parent.children) == 1
}

// OnlyChildren lists, in breadth-first order starting with n, the members
// without siblings. A root is always included.
//
// NOTE: the root qualifies even when it has many children. Callers that want
// "sole child of a parent" should drop names whose node IsRoot.
func (n *Node) OnlyChildren() []string {
	var names []string
	n.walk(func(cur *Node) bool {
		if hasNoSiblings(cur) {
			names = append(names, cur.name)
		}
		return true
	})
	return names
}

// PeopleWithoutKids lists the leaf members below n in breadth-first order. n
// itself is never included.
func (n *Node) PeopleWithoutKids() []string {
	var names []string
	n.walkBelow(func(cur *Node) bool {
		if cur.IsLeaf() {
			names = append(names, cur.name)
		}
		return true
	})
	return names
}

// GrandKidCount is the number of n's grandchildren.
func (n *Node) GrandKidCount() int {
	count := 0
	for _, c := range n.children {
		count += len(c.children)
	}
	return count
}

// MostGrandKids returns the member below n with the most grandchildren. Ties
// go to the member visited first in breadth-first order.
func (n *Node) MostGrandKids() (string, error) {
	var best *Node
	most := 0
	n.walkBelow(func(cur *Node) bool {
		if c := cur.GrandKidCount(); c > most {
			most = c
			best = cur
		}
		return true
	})
	if best == nil {
		return "", fmt.Errorf("most grandkids below %q: %w", n.name, ErrNoGrandKids)
	}
	return best.name, nil
}

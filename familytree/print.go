package familytree

import (
	"io"

	"github.com/xlab/treeprint"
)

// String renders the subtree rooted at n as a tree diagram, one line per member.
func (n *Node) String() string {
	tree := treeprint.NewWithRoot(n.name)
	addBranches(n, tree)
	return tree.String()
}

// Print writes the diagram produced by String to w.
func (n *Node) Print(w io.Writer) error {
	_, err := io.WriteString(w, n.String())
	return err
}

func addBranches(n *Node, tree treeprint.Tree) {
	for _, child := range n.children {
		if child.IsLeaf() {
			tree.AddNode(child.name)
			continue
		}
		addBranches(child, tree.AddBranch(child.name))
	}
}

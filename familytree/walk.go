package familytree

// walk visits n and then its descendants in breadth-first order, children in
// stored order. Returning false from visit stops the walk.
func (n *Node) walk(visit func(*Node) bool) {
	queue := []*Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !visit(cur) {
			return
		}
		queue = append(queue, cur.children...)
	}
}

// walkBelow is walk without n itself.
func (n *Node) walkBelow(visit func(*Node) bool) {
	n.walk(func(cur *Node) bool {
		if cur == n {
			return true
		}
		return visit(cur)
	})
}

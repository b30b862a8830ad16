package arbor

// debugCheckTreeDepth warns if the tree depth at n exceeds the registry's
// threshold.
func debugCheckTreeDepth(r *Registry, n *Node) {
	depth := n.depth() + 1
	if depth > r.maxTreeDepth {
		r.logger.Warn("tree depth exceeds threshold",
			"node", n.displayName(), "depth", depth, "threshold", r.maxTreeDepth)
	}
}

// debugCheckChildCount warns if n has more children than the registry's
// threshold.
func debugCheckChildCount(r *Registry, n *Node) {
	if len(n.children) > r.maxChildCount {
		r.logger.Warn("child count exceeds threshold",
			"node", n.displayName(), "children", len(n.children), "threshold", r.maxChildCount)
	}
}

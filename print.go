package arbor

import (
	"bufio"
	"io"
)

// PrintTree writes the path of n and of every descendant relative to n, one
// per line, depth-first. n itself prints as ".".
func (n *Node) PrintTree(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n.Walk(func(d *Node) bool {
		_, _ = bw.WriteString(n.relativePath(d))
		_ = bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}

// PrintTreePretty writes the names of n and its descendants with box-drawing
// guides:
//
//	 ┖╴root
//	    ┠╴a
//	    ┃  ┖╴c
//	    ┖╴b
func (n *Node) PrintTreePretty(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n.printPretty(bw, "", true)
	return bw.Flush()
}

func (n *Node) printPretty(w *bufio.Writer, prefix string, last bool) {
	guide := " ┠╴"
	if last {
		guide = " ┖╴"
	}
	_, _ = w.WriteString(prefix + guide + n.Name + "\n")
	childPrefix := prefix + " ┃ "
	if last {
		childPrefix = prefix + "   "
	}
	for i, c := range n.children {
		c.printPretty(w, childPrefix, i == len(n.children)-1)
	}
}

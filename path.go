package arbor

import "strings"

// Path returns the absolute path of n, e.g. "/root/ui/button".
func (n *Node) Path() string {
	chain := n.ancestry()
	names := make([]string, len(chain))
	for i, p := range chain {
		names[i] = p.Name
	}
	return "/" + strings.Join(names, "/")
}

// PathTo returns the path from n to other using ".." to climb, or "." when
// other is n.
func (n *Node) PathTo(other *Node) (string, error) {
	if other == nil {
		return "", n.fail("path to", ErrNilNode)
	}
	common := n.FindCommonParentWith(other)
	if common == nil {
		return "", n.fail("path to", ErrNoCommonParent)
	}
	var parts []string
	for p := n; p != common; p = p.parent {
		parts = append(parts, "..")
	}
	down := common.relativePath(other)
	if down != "." {
		parts = append(parts, down)
	}
	if len(parts) == 0 {
		return ".", nil
	}
	return strings.Join(parts, "/"), nil
}

// GetNode resolves a path relative to n ("a/b", "../c", ".") or an absolute
// path starting at n's root ("/root/a"). It returns nil when nothing
// matches.
func (n *Node) GetNode(path string) *Node {
	cur := n
	if strings.HasPrefix(path, "/") {
		parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
		root := n.Root()
		if parts[0] != root.Name {
			return nil
		}
		cur = root
		path = strings.Join(parts[1:], "/")
	}
	if path == "" {
		return cur
	}
	for _, part := range strings.Split(path, "/") {
		switch part {
		case "", ".":
		case "..":
			cur = cur.parent
		default:
			cur = cur.FindChild(part)
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// relativePath returns the downward path from n to descendant, or "." for n
// itself. descendant must be n or below it.
func (n *Node) relativePath(descendant *Node) string {
	if descendant == n {
		return "."
	}
	var names []string
	for p := descendant; p != nil && p != n; p = p.parent {
		names = append(names, p.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "/")
}

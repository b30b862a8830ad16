package arbor

import (
	"strconv"
	"strings"
)

const defaultBaseName = "Node"

// ValidateChildName returns a name for child that no other child of n uses.
// If child's current name is already free it is returned unchanged.
// Otherwise the result has the form "@Name@<id>", which differs for every
// candidate because it embeds the candidate's ID. child may or may not be a
// child of n yet; it is never compared with itself.
func (n *Node) ValidateChildName(child *Node) string {
	if child == nil {
		return ""
	}
	return n.uniqueChildName(child, false)
}

// uniqueChildName resolves a name clash for child among n's children.
func (n *Node) uniqueChildName(child *Node, legible bool) string {
	if !n.siblingHasName(child, child.Name) {
		return child.Name
	}
	if legible {
		return n.serialChildName(child)
	}
	base := child.Name
	if base == "" {
		base = defaultBaseName
	}
	name := "@" + base + "@" + strconv.FormatUint(child.ID, 10)
	for i := 2; n.siblingHasName(child, name); i++ {
		name = "@" + base + "@" + strconv.FormatUint(child.ID, 10) + "_" + strconv.Itoa(i)
	}
	return name
}

// serialChildName strips any trailing number from child's name and counts
// up from the next value until the name is free: "Sprite" -> "Sprite2",
// "Sprite2" -> "Sprite3".
func (n *Node) serialChildName(child *Node) string {
	base := child.Name
	if base == "" {
		base = defaultBaseName
	}
	trimmed := strings.TrimRightFunc(base, func(r rune) bool { return r >= '0' && r <= '9' })
	num := 1
	if trimmed != base && trimmed != "" {
		if v, err := strconv.Atoi(base[len(trimmed):]); err == nil {
			num = v
		}
		base = trimmed
	}
	for {
		num++
		name := base + strconv.Itoa(num)
		if !n.siblingHasName(child, name) {
			return name
		}
	}
}

func (n *Node) siblingHasName(child *Node, name string) bool {
	for _, c := range n.children {
		if c != child && c.Name == name {
			return true
		}
	}
	return false
}

// FindChild returns the first direct child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

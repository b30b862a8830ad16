package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/phanxgames/arbor"
)

var (
	colorBranch = lipgloss.Color("#16858E")
	colorName   = lipgloss.Color("#2CD7C7")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")
)

var styles = struct {
	Root   lipgloss.Style
	Item   lipgloss.Style
	Branch lipgloss.Style
	Muted  lipgloss.Style
	Title  lipgloss.Style
	Error  lipgloss.Style
}{
	Root:   lipgloss.NewStyle().Bold(true).Foreground(colorName),
	Item:   lipgloss.NewStyle().Foreground(colorName),
	Branch: lipgloss.NewStyle().Foreground(colorBranch).MarginRight(1),
	Muted:  lipgloss.NewStyle().Foreground(colorMuted),
	Title:  lipgloss.NewStyle().Bold(true),
	Error:  lipgloss.NewStyle().Foreground(colorError),
}

type renderOptions struct {
	groups bool
}

// renderTree draws n and its subtree with rounded branch guides.
func renderTree(n *arbor.Node, opts renderOptions) string {
	t := buildTree(n, opts).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styles.Branch).
		RootStyle(styles.Root).
		ItemStyle(styles.Item)
	return t.String()
}

func buildTree(n *arbor.Node, opts renderOptions) *tree.Tree {
	t := tree.Root(nodeLabel(n, opts))
	for _, c := range n.Children() {
		if c.ChildCount() > 0 {
			t.Child(buildTree(c, opts))
		} else {
			t.Child(nodeLabel(c, opts))
		}
	}
	return t
}

func nodeLabel(n *arbor.Node, opts renderOptions) string {
	name := n.Name
	if name == "" {
		name = "<unnamed>"
	}
	if !opts.groups {
		return name
	}
	groups := n.Groups()
	if len(groups) == 0 {
		return name
	}
	tags := make([]string, len(groups))
	for i, g := range groups {
		tags[i] = g.Name
		if g.Persistent {
			tags[i] += "*"
		}
	}
	return name + " " + styles.Muted.Render("["+strings.Join(tags, ", ")+"]")
}

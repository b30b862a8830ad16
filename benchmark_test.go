package arbor

import (
	"strconv"
	"testing"
)

// setupBenchTree creates a registry with a root node holding n children,
// each with one grandchild.
func setupBenchTree(n int) (*Registry, *Node) {
	reg := NewRegistry()
	root := reg.NewNode("root")
	for i := 0; i < n; i++ {
		c := reg.NewNode("c" + strconv.Itoa(i))
		root.AddChild(c)
		c.AddChild(reg.NewNode("leaf"))
	}
	return reg, root
}

// --- Hierarchy Benchmarks ---

func BenchmarkAddChild_1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		reg := NewRegistry()
		root := reg.NewNode("root")
		for j := 0; j < 1000; j++ {
			root.AddChild(reg.NewNode("child"))
		}
	}
}

func BenchmarkAddChildLegible_1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		reg := NewRegistry()
		root := reg.NewNode("root")
		for j := 0; j < 1000; j++ {
			root.AddChild(reg.NewNode("child"), Legible())
		}
	}
}

func BenchmarkMoveChild(b *testing.B) {
	_, root := setupBenchTree(1000)
	first := root.Child(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.MoveChild(first, (i+1)%1000)
	}
}

func BenchmarkFindCommonParentWith(b *testing.B) {
	reg := NewRegistry()
	root := reg.NewNode("root")
	left, right := root, root
	for i := 0; i < 32; i++ {
		l := reg.NewNode("l")
		r := reg.NewNode("r")
		left.AddChild(l)
		right.AddChild(r)
		left, right = l, r
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		left.FindCommonParentWith(right)
	}
}

// --- Copy Benchmarks ---

func BenchmarkDuplicateSubtree_1000(b *testing.B) {
	_, root := setupBenchTree(1000)
	opts := DefaultDuplicate
	opts.Children = true
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dup, err := root.Duplicate(opts)
		if err != nil {
			b.Fatal(err)
		}
		_ = dup
	}
}

func BenchmarkStrayNodes(b *testing.B) {
	reg, root := setupBenchTree(1000)
	reg.AddRoot(root)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.StrayNodes()
	}
}

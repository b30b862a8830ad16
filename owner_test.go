package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnedByMatchesExactOwner(t *testing.T) {
	reg := NewRegistry()
	scene := reg.NewNode("scene")
	a := reg.NewNode("a")
	unrelated := reg.NewNode("unrelated")
	b := reg.NewNode("b")
	nested := reg.NewNode("nested")
	c := reg.NewNode("c")

	require.NoError(t, scene.AddChild(a))
	require.NoError(t, scene.AddChild(unrelated))
	require.NoError(t, unrelated.AddChild(b))
	require.NoError(t, scene.AddChild(nested))
	require.NoError(t, nested.AddChild(c))

	a.SetOwner(scene)
	b.SetOwner(scene)
	c.SetOwner(nested)

	assert.Equal(t, []*Node{a, b}, scene.OwnedBy(scene))
	assert.Equal(t, []*Node{c}, scene.OwnedBy(nested))
	assert.Empty(t, scene.OwnedBy(nil))
}

func TestGetOwnedByAppends(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewNode("root")
	a := reg.NewNode("a")
	require.NoError(t, root.AddChild(a))
	a.SetOwner(root)

	out := []*Node{root}
	root.GetOwnedBy(root, &out)
	assert.Equal(t, []*Node{root, a}, out)
}

func TestOwnerIsNotStructural(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewNode("root")
	mid := reg.NewNode("mid")
	leaf := reg.NewNode("leaf")
	require.NoError(t, root.AddChild(mid))
	require.NoError(t, mid.AddChild(leaf))

	leaf.SetOwner(root)
	assert.Same(t, mid, leaf.Parent())
	assert.Same(t, root, leaf.Owner())
	assert.Empty(t, mid.OwnedBy(mid))

	leaf.SetOwner(nil)
	assert.Nil(t, leaf.Owner())
}

package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hookComponent struct {
	attached []*Node
	detached []*Node
}

func (h *hookComponent) ComponentName() string { return "hook" }
func (h *hookComponent) OnAttach(n *Node)      { h.attached = append(h.attached, n) }
func (h *hookComponent) OnDetach(n *Node)      { h.detached = append(h.detached, n) }

func TestComponentLifecycle(t *testing.T) {
	n := NewRegistry().NewNode("n")
	h := &hookComponent{}

	require.NoError(t, n.AddComponent(h))
	assert.Equal(t, []*Node{n}, h.attached)
	assert.Same(t, h, n.Component("hook"))
	assert.Equal(t, []Component{h}, n.Components())

	got, ok := ComponentOf[*hookComponent](n)
	require.True(t, ok)
	assert.Same(t, h, got)

	assert.Same(t, h, n.RemoveComponent("hook"))
	assert.Equal(t, []*Node{n}, h.detached)
	assert.Nil(t, n.Component("hook"))
	assert.Nil(t, n.RemoveComponent("hook"))
}

func TestAddComponentRejects(t *testing.T) {
	n := NewRegistry().NewNode("n")
	require.NoError(t, n.AddComponent(NewTransform()))

	require.ErrorIs(t, n.AddComponent(NewTransform()), ErrDuplicateComponent)
	require.ErrorIs(t, n.AddComponent(nil), ErrNilNode)
	assert.Len(t, n.Components(), 1)

	_, ok := ComponentOf[*Animator](n)
	assert.False(t, ok)
}

func TestFreeDetachesComponents(t *testing.T) {
	n := NewRegistry().NewNode("n")
	h := &hookComponent{}
	require.NoError(t, n.AddComponent(h))

	require.NoError(t, n.Free())
	assert.Equal(t, []*Node{n}, h.detached)
	assert.Empty(t, n.Components())
	require.ErrorIs(t, n.AddComponent(&hookComponent{}), ErrFreed)
}

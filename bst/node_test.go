package bst

import "bytes"
import "strings"
import "testing"

import "github.com/stretchr/testify/assert"

func TestNodeAccessors(t *testing.T) {
	nd := newnode(10)
	assert.Equal(t, 10, nd.Value())
	assert.Nil(t, nd.Left())
	assert.Nil(t, nd.Right())
	assert.Equal(t, "10", nd.repr())

	var nilnd *Node[int]
	assert.Equal(t, 0, nilnd.Value())
	assert.Nil(t, nilnd.Left())
	assert.Nil(t, nilnd.Right())
}

func TestNodeDotdump(t *testing.T) {
	root := newnode(2)
	root.left, root.right = newnode(1), newnode(3)

	var buf bytes.Buffer
	root.dotdump(&buf)
	out := buf.String()
	assert.Contains(t, out, "n0 [label=\"{2}\"];")
	assert.Contains(t, out, "n0 -> n1 [label=right];")
	assert.Contains(t, out, "n1 [label=\"{3}\"];")
	assert.Contains(t, out, "n0 -> n2 [label=left];")
	assert.Contains(t, out, "n2 [label=\"{1}\"];")
	assert.Equal(t, 5, strings.Count(out, "\n"))

	buf.Reset()
	(*Node[int])(nil).dotdump(&buf)
	assert.Equal(t, "", buf.String())
}

func TestNodeDotdumpEscape(t *testing.T) {
	root := newnode(`a"{b|c}<d>\`)

	var buf bytes.Buffer
	root.dotdump(&buf)
	expected := `  n0 [label="{a\"\{b\|c\}\<d\>\\}"];` + "\n"
	assert.Equal(t, expected, buf.String())
}

func TestClonetree(t *testing.T) {
	root := newnode(2)
	root.left, root.right = newnode(1), newnode(3)
	root.left.left = newnode(1)

	newroot := clonetree(root)
	assert.NotSame(t, root, newroot)
	assert.Equal(t, 2, newroot.value)
	assert.Equal(t, 1, newroot.left.value)
	assert.Equal(t, 1, newroot.left.left.value)
	assert.Equal(t, 3, newroot.right.value)
	assert.Nil(t, newroot.left.right)
	assert.Nil(t, clonetree[int](nil))
}

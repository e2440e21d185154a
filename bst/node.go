package bst

import "io"
import "fmt"
import "strings"

// Node defines a node in bst tree. A node is created for every
// inserted value and only its empty child slots are ever filled.
type Node[T any] struct {
	value T
	left  *Node[T] // values <= value
	right *Node[T] // values > value
}

func newnode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value return the value held by this node, zero value if node is nil.
func (nd *Node[T]) Value() (value T) {
	if nd == nil {
		return value
	}
	return nd.value
}

// Left return the sub-tree of values ordered before or equal to this
// node's value, nil if absent.
func (nd *Node[T]) Left() *Node[T] {
	if nd == nil {
		return nil
	}
	return nd.left
}

// Right return the sub-tree of values ordered after this node's value,
// nil if absent.
func (nd *Node[T]) Right() *Node[T] {
	if nd == nil {
		return nil
	}
	return nd.right
}

//---- maintanence methods.

func (nd *Node[T]) repr() string {
	return fmt.Sprintf("%v", nd.value)
}

func (nd *Node[T]) pprint(w io.Writer) {
	type frame struct {
		nd            *Node[T]
		prefix, label string
	}

	stack := []frame{{nd: nd}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.nd == nil {
			fmt.Fprintf(w, "%v%v<nil>\n", f.prefix, f.label)
			continue
		}
		fmt.Fprintf(w, "%v%v%v\n", f.prefix, f.label, f.nd.repr())
		if f.nd.left == nil && f.nd.right == nil {
			continue
		}
		prefix := f.prefix + "  "
		stack = append(stack,
			frame{f.nd.right, prefix, "right: "},
			frame{f.nd.left, prefix, "left: "},
		)
	}
}

// dotdump nodes as graphviz statements, values need not be unique
// hence nodes are named by their pre-order position.
func (nd *Node[T]) dotdump(w io.Writer) {
	if nd == nil {
		return
	}

	type frame struct {
		nd *Node[T]
		id int
	}

	ids := 0
	stack := []frame{{nd, ids}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		label := recordescaper.Replace(f.nd.repr())
		fmt.Fprintf(w, "  n%v [label=\"{%v}\"];\n", f.id, label)
		children := []struct {
			nd    *Node[T]
			label string
		}{{f.nd.right, "right"}, {f.nd.left, "left"}}
		for _, child := range children {
			if child.nd == nil {
				continue
			}
			ids++
			fmsg := "  n%v -> n%v [label=%v];\n"
			fmt.Fprintf(w, fmsg, f.id, ids, child.label)
			stack = append(stack, frame{child.nd, ids})
		}
	}
}

// characters with special meaning inside a quoted record label.
var recordescaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`,
	`|`, `\|`, `<`, `\<`, `>`, `\>`,
)

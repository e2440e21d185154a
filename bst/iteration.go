package bst

// tree walks in this file are iterative, an unbalanced tree can be as
// deep as the number of entries.

// inorder walk, left sub-tree then node then right sub-tree, until
// callb returns false.
func (tree *BST[T]) inorder(callb func(nd *Node[T]) bool) {
	stack := tree.getstack()
	nd := tree.root
	for nd != nil || len(stack) > 0 {
		for ; nd != nil; nd = nd.left {
			stack = append(stack, nd)
		}
		nd, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if !callb(nd) {
			break
		}
		nd = nd.right
	}
	tree.putstack(stack)
}

// preorder walk along with depth of each node, root is at depth 1.
func (tree *BST[T]) preorder(callb func(nd *Node[T], depth int64) bool) {
	type frame struct {
		nd    *Node[T]
		depth int64
	}

	if tree.root == nil {
		return
	}
	stack := []frame{{tree.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !callb(f.nd, f.depth) {
			return
		}
		if f.nd.right != nil {
			stack = append(stack, frame{f.nd.right, f.depth + 1})
		}
		if f.nd.left != nil {
			stack = append(stack, frame{f.nd.left, f.depth + 1})
		}
	}
}

func (tree *BST[T]) height() (height int64) {
	tree.preorder(func(_ *Node[T], depth int64) bool {
		if depth > height {
			height = depth
		}
		return true
	})
	return height
}

func clonetree[T any](root *Node[T]) *Node[T] {
	type pair struct{ src, dst *Node[T] }

	if root == nil {
		return nil
	}
	newroot := newnode(root.value)
	stack := []pair{{root, newroot}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.src.left != nil {
			p.dst.left = newnode(p.src.left.value)
			stack = append(stack, pair{p.src.left, p.dst.left})
		}
		if p.src.right != nil {
			p.dst.right = newnode(p.src.right.value)
			stack = append(stack, pair{p.src.right, p.dst.right})
		}
	}
	return newroot
}

func (tree *BST[T]) getstack() (stack []*Node[T]) {
	select {
	case stack = <-tree.stackpool:
	default:
		stack = make([]*Node[T], 0, 64)
	}
	return stack
}

func (tree *BST[T]) putstack(stack []*Node[T]) {
	clear(stack[:cap(stack)]) // don't pin nodes from the pool
	select {
	case tree.stackpool <- stack[:0]:
	default: // Let stack be collected by GC
	}
}

package bst

import "fmt"
import "sync/atomic"

import "github.com/bnclabs/gobst/lib"
import gohumanize "github.com/dustin/go-humanize"

/*
following expectations on the tree should be met.
* Every value in the left sub-tree of a node is <= node's value.
* Every value in the right sub-tree of a node is > node's value.
* Number of reachable nodes match the number of inserts, which
  also guards against cycles.
* Depths of reachable nodes add up to the depths recorded while
  inserting, nodes never move once attached.
*/
func (tree *BST[T]) validate() {
	h := lib.NewhistogramInt64(1, 256, 1)
	n_count := tree.validatetree(h)
	if x := tree.Count(); n_count != x {
		fmsg := "validate(): reachable nodes:%v != n_count:%v"
		panic(fmt.Errorf(fmsg, n_count, x))
	}
	if x, y := h.Max(), tree.h_insertdepth.Max(); x != y {
		fmsg := "validate(): max height:%v != max insert depth:%v"
		panic(fmt.Errorf(fmsg, x, y))
	} else if x, y := h.Sum(), tree.h_insertdepth.Sum(); x != y {
		fmsg := "validate(): sum of depths:%v != sum of insert depths:%v"
		panic(fmt.Errorf(fmsg, x, y))
	}

	tree.validatestats()
	tree.validatemem()
}

func (tree *BST[T]) validatetree(h *lib.HistogramInt64) (n_count int64) {
	// lo is exclusive, hi is inclusive, nil means unbounded.
	type frame struct {
		nd     *Node[T]
		depth  int64
		lo, hi *Node[T]
	}

	limit := tree.Count()
	if tree.root == nil {
		return 0
	}
	stack := []frame{{nd: tree.root, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n_count++; n_count > limit {
			fmsg := "validate(): more than %v nodes reachable, cycle ?"
			panic(fmt.Errorf(fmsg, limit))
		}
		h.Add(f.depth)

		if f.lo != nil && tree.cmp(f.nd.value, f.lo.value) <= 0 {
			fmsg := "validate(): sort order, %v in right sub-tree of %v"
			panic(fmt.Errorf(fmsg, f.nd.repr(), f.lo.repr()))
		}
		if f.hi != nil && tree.cmp(f.nd.value, f.hi.value) > 0 {
			fmsg := "validate(): sort order, %v in left sub-tree of %v"
			panic(fmt.Errorf(fmsg, f.nd.repr(), f.hi.repr()))
		}

		if f.nd.right != nil {
			stack = append(stack, frame{f.nd.right, f.depth + 1, f.nd, f.hi})
		}
		if f.nd.left != nil {
			stack = append(stack, frame{f.nd.left, f.depth + 1, f.lo, f.nd})
		}
	}
	return n_count
}

func (tree *BST[T]) validatestats() {
	// n_count should match n_inserts, there are no deletes.
	n_count := atomic.LoadInt64(&tree.n_count)
	n_inserts := atomic.LoadInt64(&tree.n_inserts)
	if n_count != n_inserts {
		fmsg := "validatestats(): n_count:%v != n_inserts:%v"
		panic(fmt.Errorf(fmsg, n_count, n_inserts))
	}
	// n_nodes should match n_inserts, one node per insert.
	n_nodes := atomic.LoadInt64(&tree.n_nodes)
	if n_inserts != n_nodes {
		fmsg := "validatestats(): n_inserts:%v != n_nodes:%v"
		panic(fmt.Errorf(fmsg, n_inserts, n_nodes))
	}
	// every insert should have sampled its depth.
	if x := tree.h_insertdepth.Samples(); x != n_inserts {
		fmsg := "validatestats(): h_insertdepth.samples:%v != n_inserts:%v"
		panic(fmt.Errorf(fmsg, x, n_inserts))
	}
}

func (tree *BST[T]) validatemem() {
	if memory := tree.nodememory(); memory > tree.memcapacity {
		mem := gohumanize.Bytes(uint64(memory))
		capacity := gohumanize.Bytes(uint64(tree.memcapacity))
		fmsg := "%v node memory %v exceeds memcapacity %v\n"
		warnf(fmsg, tree.logprefix, mem, capacity)
	}
}

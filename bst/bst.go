package bst

import "io"
import "fmt"
import "iter"
import "sync"
import "strings"
import "sync/atomic"

import "github.com/bnclabs/gobst/api"
import "github.com/bnclabs/gobst/lib"
import s "github.com/bnclabs/gosettings"
import "golang.org/x/exp/constraints"

// BST manage a single instance of in-memory sorted index using
// an unbalanced binary search tree.
type BST[T any] struct { // tree container
	// all are 64-bit aligned
	bststats
	h_insertdepth *lib.HistogramInt64

	// can be unaligned fields

	name      string
	root      *Node[T]
	cmp       func(a, b T) int
	rw        sync.RWMutex
	stackpool chan []*Node[T]
	deepwarn  bool

	// settings
	iterpoolsize int64
	depthwarn    int64
	memcapacity  int64
	separator    string
	setts        s.Settings
	logprefix    string
}

// New create an empty tree ordering values by their natural order.
func New[T constraints.Ordered](name string, setts s.Settings) *BST[T] {
	return NewWith(name, compare[T], setts)
}

// NewWith create an empty tree ordering values using cmp, which shall
// return a negative number when a < b, zero when a == b and a positive
// number when a > b. cmp must define a total order over all values
// inserted into the tree.
func NewWith[T any](name string, cmp func(a, b T) int, setts s.Settings) *BST[T] {
	if cmp == nil {
		panic(fmt.Errorf("NewWith(): nil comparator for %q", name))
	}
	tree := &BST[T]{name: name, cmp: cmp}
	tree.logprefix = fmt.Sprintf("BST [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	tree.readsettings(setts)
	tree.stackpool = make(chan []*Node[T], tree.iterpoolsize)

	// statistics
	tree.h_insertdepth = lib.NewhistogramInt64(1, 256, 1)

	infof("%v started ...\n", tree.logprefix)
	return tree
}

func compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

func (tree *BST[T]) readsettings(setts s.Settings) {
	tree.iterpoolsize = setts.Int64("iterpool.size")
	if tree.iterpoolsize < 0 {
		tree.iterpoolsize = 0
	}
	tree.depthwarn = setts.Int64("depth.warn")
	tree.memcapacity = setts.Int64("memcapacity")
	tree.separator = setts.String("render.separator")
	tree.setts = setts
}

// ---- api.IndexMeta{} interface

// ID implement api.IndexMeta interface.
func (tree *BST[T]) ID() string {
	return tree.name
}

// Count implement api.IndexMeta interface.
func (tree *BST[T]) Count() int64 {
	return atomic.LoadInt64(&tree.n_count)
}

// Stats implement api.IndexMeta interface.
func (tree *BST[T]) Stats() map[string]interface{} {
	tree.rw.RLock()
	defer tree.rw.RUnlock()
	return tree.stats()
}

// Fullstats implement api.IndexMeta interface.
func (tree *BST[T]) Fullstats() map[string]interface{} {
	tree.rw.RLock()
	defer tree.rw.RUnlock()
	return tree.fullstats()
}

// Validate implement api.IndexMeta interface. Will walk the full
// tree to confirm the sort order and the book-keeping counters.
func (tree *BST[T]) Validate() {
	tree.rw.RLock()
	defer tree.rw.RUnlock()
	tree.validate()
}

// Log implement api.IndexMeta interface.
func (tree *BST[T]) Log(humanize bool) {
	tree.rw.RLock()
	defer tree.rw.RUnlock()
	tree.log(humanize)
}

// ---- api.IndexWriter{} interface

// Insert implement api.IndexWriter interface. If tree is empty value
// becomes the root, otherwise a new node is attached at the first
// empty slot found descending left for values less than or equal to
// the node's value, right for greater values.
func (tree *BST[T]) Insert(value T) {
	newnd := newnode(value)

	tree.rw.Lock()
	defer tree.rw.Unlock()

	depth := int64(1)
	if tree.root == nil {
		tree.root = newnd

	} else {
		nd := tree.root
		for attached := false; !attached; {
			depth++
			if tree.cmp(value, nd.value) <= 0 {
				if nd.left == nil {
					nd.left, attached = newnd, true
				}
				nd = nd.left
			} else {
				if nd.right == nil {
					nd.right, attached = newnd, true
				}
				nd = nd.right
			}
		}
	}
	tree.insertcounts(depth)
}

func (tree *BST[T]) insertcounts(depth int64) {
	atomic.AddInt64(&tree.n_count, 1)
	atomic.AddInt64(&tree.n_inserts, 1)
	atomic.AddInt64(&tree.n_nodes, 1)
	tree.h_insertdepth.Add(depth)
	if depth > tree.depthwarn && !tree.deepwarn {
		tree.deepwarn = true
		fmsg := "%v insert depth %v exceeds %v with %v entries\n"
		warnf(fmsg, tree.logprefix, depth, tree.depthwarn, tree.Count())
	}
}

// ---- api.IndexReader{} interface

// Has implement api.IndexReader interface.
func (tree *BST[T]) Has(value T) bool {
	tree.rw.RLock()
	defer tree.rw.RUnlock()

	atomic.AddInt64(&tree.n_lookups, 1)
	for nd := tree.root; nd != nil; {
		cmp := tree.cmp(value, nd.value)
		if cmp == 0 {
			return true
		} else if cmp < 0 {
			nd = nd.left
		} else {
			nd = nd.right
		}
	}
	return false
}

// Min implement api.IndexReader interface.
func (tree *BST[T]) Min() (value T, ok bool) {
	tree.rw.RLock()
	defer tree.rw.RUnlock()

	atomic.AddInt64(&tree.n_lookups, 1)
	nd := tree.root
	for nd != nil && nd.left != nil {
		nd = nd.left
	}
	if nd == nil {
		return value, false
	}
	return nd.value, true
}

// Max implement api.IndexReader interface.
func (tree *BST[T]) Max() (value T, ok bool) {
	tree.rw.RLock()
	defer tree.rw.RUnlock()

	atomic.AddInt64(&tree.n_lookups, 1)
	nd := tree.root
	for nd != nil && nd.right != nil {
		nd = nd.right
	}
	if nd == nil {
		return value, false
	}
	return nd.value, true
}

// Traverse implement api.IndexReader interface. Values are visited in
// ascending order, equal values in the reverse of their insertion
// order. callb shall not insert into the same tree.
func (tree *BST[T]) Traverse(callb api.NodeCallb[T]) {
	if callb == nil {
		return
	}

	tree.rw.RLock()
	defer tree.rw.RUnlock()

	atomic.AddInt64(&tree.n_traversals, 1)
	tree.inorder(func(nd *Node[T]) bool { return callb(nd.value) })
}

// Values implement api.IndexReader interface.
func (tree *BST[T]) Values() []T {
	values := make([]T, 0, tree.Count())
	tree.Traverse(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

// All implement api.IndexReader interface. Returned sequence walk
// the tree afresh every time it is ranged over.
func (tree *BST[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		tree.Traverse(yield)
	}
}

// Render implement api.IndexReader interface. Every value is
// formatted with %v and followed by "render.separator", so a tree
// holding 1, 2 and 3 renders as "1, 2, 3, ". An empty tree renders
// as empty string.
func (tree *BST[T]) Render() string {
	var sb strings.Builder
	tree.Prettyprint(&sb)
	return sb.String()
}

// Prettyprint write Render() output to w, without a trailing newline.
func (tree *BST[T]) Prettyprint(w io.Writer) (err error) {
	tree.Traverse(func(value T) bool {
		_, err = fmt.Fprintf(w, "%v%v", value, tree.separator)
		return err == nil
	})
	return err
}

// ---- structural methods.

// Root return the root node, nil if tree is empty. Nodes are
// read-only and shall not be accessed while inserting into the tree.
func (tree *BST[T]) Root() *Node[T] {
	tree.rw.RLock()
	defer tree.rw.RUnlock()
	return tree.root
}

// Height return number of nodes along the longest path from the root
// to a leaf, 0 for an empty tree.
func (tree *BST[T]) Height() int64 {
	tree.rw.RLock()
	defer tree.rw.RUnlock()
	return tree.height()
}

// Clone return a copy of this tree with identical shape, subsequent
// inserts into either tree don't affect the other.
func (tree *BST[T]) Clone(name string) *BST[T] {
	tree.rw.RLock()
	defer tree.rw.RUnlock()

	newtree := NewWith(name, tree.cmp, tree.setts)
	newtree.root = clonetree(tree.root)
	newtree.n_count = atomic.LoadInt64(&tree.n_count)
	newtree.n_inserts = atomic.LoadInt64(&tree.n_inserts)
	newtree.n_nodes = atomic.LoadInt64(&tree.n_nodes)
	newtree.h_insertdepth = tree.h_insertdepth.Clone()
	newtree.deepwarn = tree.deepwarn

	atomic.AddInt64(&tree.n_clones, 1)
	debugf("%v cloned into %v\n", tree.logprefix, newtree.logprefix)
	return newtree
}

// Dotdump to convert whole tree into dot script that can be visualized
// using graphviz.
func (tree *BST[T]) Dotdump(w io.Writer) {
	tree.rw.RLock()
	defer tree.rw.RUnlock()

	fmt.Fprintf(w, "digraph bst {\n  node[shape=record];\n")
	tree.root.dotdump(w)
	fmt.Fprintf(w, "}\n")
}

// Pprint write the tree structure to w, one node per line, children
// indented below their parent.
func (tree *BST[T]) Pprint(w io.Writer) {
	tree.rw.RLock()
	defer tree.rw.RUnlock()
	tree.root.pprint(w)
}

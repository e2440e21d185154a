package bst

import "fmt"
import "unsafe"
import "sync/atomic"
import "encoding/json"

import "github.com/bnclabs/gobst/lib"
import gohumanize "github.com/dustin/go-humanize"

type bststats struct {
	n_count      int64 // number of entries in the tree
	n_inserts    int64
	n_nodes      int64 // number of nodes allocated
	n_lookups    int64
	n_traversals int64
	n_clones     int64
}

func (tree *BST[T]) stats() map[string]interface{} {
	stats := map[string]interface{}{
		"n_count":       atomic.LoadInt64(&tree.n_count),
		"n_inserts":     atomic.LoadInt64(&tree.n_inserts),
		"n_nodes":       atomic.LoadInt64(&tree.n_nodes),
		"n_lookups":     atomic.LoadInt64(&tree.n_lookups),
		"n_traversals":  atomic.LoadInt64(&tree.n_traversals),
		"n_clones":      atomic.LoadInt64(&tree.n_clones),
		"h_insertdepth": tree.h_insertdepth.Fullstats(),
		"node.memory":   tree.nodememory(),
		"memcapacity":   tree.memcapacity,
	}
	return stats
}

func (tree *BST[T]) fullstats() map[string]interface{} {
	stats := tree.stats()
	h_height := tree.heightstats()
	stats["h_height"] = h_height.Fullstats()
	stats["height"] = h_height.Max()

	if x, n := h_height.Samples(), tree.Count(); x != n {
		fmsg := "expected h_height.samples:%v to be same as Count():%v"
		panic(fmt.Errorf(fmsg, x, n))
	}
	return stats
}

// heightstats gather depth of every node in the tree.
func (tree *BST[T]) heightstats() *lib.HistogramInt64 {
	h := lib.NewhistogramInt64(1, 256, 1)
	tree.preorder(func(_ *Node[T], depth int64) bool {
		h.Add(depth)
		return true
	})
	return h
}

// nodememory estimate memory held by tree nodes, memory referred
// to by values, like string content, is not accounted.
func (tree *BST[T]) nodememory() int64 {
	return int64(unsafe.Sizeof(Node[T]{})) * tree.Count()
}

func (tree *BST[T]) log(humanize bool) {
	stats := tree.fullstats()

	if humanize {
		count := gohumanize.Comma(stats["n_count"].(int64))
		mem := gohumanize.Bytes(uint64(stats["node.memory"].(int64)))
		capacity := gohumanize.Bytes(uint64(tree.memcapacity))
		fmsg := "%v count %v height %v, nodes use %v of %v\n"
		infof(fmsg, tree.logprefix, count, stats["height"], mem, capacity)
	}

	text, err := json.Marshal(stats)
	if err != nil {
		panic(fmt.Errorf("log(): %v", err))
	}
	infof("%v stats %v\n", tree.logprefix, string(text))
}

package main

import "io"
import "fmt"
import "flag"
import "time"
import "math/rand"

import "github.com/bnclabs/gobst/bst"
import "github.com/cloudfoundry/gosigar"
import humanize "github.com/dustin/go-humanize"

var randomopts struct {
	n      int
	seed   int64
	sorted bool
	log    string
}

func parseRandomopts(args []string) error {
	f := flag.NewFlagSet("random", flag.ContinueOnError)

	f.IntVar(&randomopts.n, "n", 1000,
		"number of items to generate and insert")
	f.Int64Var(&randomopts.seed, "seed", time.Now().UnixNano(),
		"seed value for generating inputs")
	f.BoolVar(&randomopts.sorted, "sorted", false,
		"insert 0..n-1 in increasing order, degenerate tree")
	f.StringVar(&randomopts.log, "log", "", "log level")
	return f.Parse(args)
}

func doRandom(args []string, w io.Writer) error {
	if err := parseRandomopts(args); err != nil {
		return err
	}
	setlogging(randomopts.log)

	fmt.Fprintf(w, "seed: %v\n", randomopts.seed)
	rnd := rand.New(rand.NewSource(randomopts.seed))

	tree := bst.New[int]("random", nil)
	now := time.Now()
	for i := 0; i < randomopts.n; i++ {
		if randomopts.sorted {
			tree.Insert(i)
		} else {
			tree.Insert(rnd.Int())
		}
	}
	took := time.Since(now)
	tree.Validate()

	count := humanize.Comma(tree.Count())
	fmt.Fprintf(w, "Took %v to insert %v items\n", took, count)
	fmt.Fprintf(w, "Height %v\n", humanize.Comma(tree.Height()))
	printutilization(w, tree.Stats())
	tree.Log(true)
	return nil
}

func printutilization(w io.Writer, stats map[string]interface{}) {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		fmt.Fprintf(w, "system memory: %v\n", err)
		return
	}
	used := humanize.Bytes(uint64(stats["node.memory"].(int64)))
	free := humanize.Bytes(mem.Free)
	total := humanize.Bytes(mem.Total)
	fmt.Fprintf(w, "Nodes{mem:%v} System{free:%v total:%v}\n", used, free, total)
}

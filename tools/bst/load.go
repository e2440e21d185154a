package main

import "io"
import "os"
import "fmt"
import "flag"

import "github.com/bnclabs/gobst/bst"
import "github.com/bnclabs/gobst/lib"
import "golang.org/x/exp/constraints"

var loadopts struct {
	values string
	stats  bool
	dot    string
	log    string
}

func parseLoadopts(args []string) error {
	f := flag.NewFlagSet("load", flag.ContinueOnError)

	f.StringVar(&loadopts.values, "values", "",
		"comma separated values, all integers, floats or quoted strings")
	f.BoolVar(&loadopts.stats, "stats", false,
		"print tree statistics")
	f.StringVar(&loadopts.dot, "dot", "",
		"dump tree as graphviz dot script into file")
	f.StringVar(&loadopts.log, "log", "", "log level")
	return f.Parse(args)
}

func doLoad(args []string, w io.Writer) error {
	if err := parseLoadopts(args); err != nil {
		return err
	}
	setlogging(loadopts.log)

	values, err := lib.Parsevalues(loadopts.values)
	if err != nil {
		return err
	}
	switch values[0].(type) {
	case int64:
		return loadvalues[int64]("load", values, w)
	case float64:
		return loadvalues[float64]("load", values, w)
	case string:
		return loadvalues[string]("load", values, w)
	}
	return fmt.Errorf("unexpected value type %T", values[0])
}

func loadvalues[T constraints.Ordered](
	name string, values []interface{}, w io.Writer) error {

	tree := bst.New[T](name, nil)
	for _, value := range values {
		tree.Insert(value.(T))
	}
	tree.Validate()

	if err := tree.Prettyprint(w); err != nil {
		return err
	}
	fmt.Fprintln(w)

	if loadopts.stats {
		fmt.Fprintln(w, lib.Prettystats(tree.Fullstats(), true))
	}
	if loadopts.dot != "" {
		fd, err := os.Create(loadopts.dot)
		if err != nil {
			return err
		}
		defer fd.Close()
		tree.Dotdump(fd)
	}
	return nil
}

// Command bst exercise the bst package from command line.
//
//	bst                          insert 10, 14, 11, 1, 2 and print them
//	bst load -values "5, 3, 8"   load values and print them in order
//	bst random -n 1000           load random integers and report
//	bst monster -prodfile file   load values generated by monster
package main

import "io"
import "os"
import "fmt"

import "github.com/bnclabs/gobst/bst"
import "github.com/bnclabs/golog"

func main() {
	if len(os.Args) < 2 {
		if err := rundemo(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	var err error
	switch os.Args[1] {
	case "load":
		err = doLoad(os.Args[2:], os.Stdout)
	case "random":
		err = doRandom(os.Args[2:], os.Stdout)
	case "monster":
		err = doMonster(os.Args[2:], os.Stdout)
	default:
		err = fmt.Errorf("please provide a valid command, %q", os.Args[1])
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rundemo build a tree and write its in-order rendering, as is,
// without a trailing newline.
func rundemo(w io.Writer) error {
	tree := bst.New[int]("demo", nil)
	for _, value := range []int{10, 14, 11, 1, 2} {
		tree.Insert(value)
	}
	return tree.Prettyprint(w)
}

func setlogging(level string) {
	if level == "" {
		return
	}
	log.SetLogger(nil, map[string]interface{}{"log.level": level})
	bst.LogComponents("all")
}

package main

import "io"
import "fmt"
import "flag"
import "errors"
import "io/ioutil"
import "encoding/json"

import "github.com/bnclabs/gobst/bst"
import "github.com/prataprc/goparsec"
import "github.com/prataprc/monster"
import mcommon "github.com/prataprc/monster/common"

var monsteropts struct {
	n        int
	seed     int
	bagdir   string
	prodfile string
	log      string
}

func parseMonsteropts(args []string) error {
	f := flag.NewFlagSet("monster", flag.ContinueOnError)

	f.IntVar(&monsteropts.n, "n", 10,
		"number of value lists to generate and load")
	f.IntVar(&monsteropts.seed, "seed", 1,
		"random seed")
	f.StringVar(&monsteropts.bagdir, "bagdir", "",
		"bag directory for monster sample data.")
	f.StringVar(&monsteropts.prodfile, "prodfile", "",
		"monster production file, shall generate a json list of numbers")
	f.StringVar(&monsteropts.log, "log", "", "log level")
	if err := f.Parse(args); err != nil {
		return err
	}

	if monsteropts.prodfile == "" {
		return errors.New("please provide production file to monster")
	}
	return nil
}

func doMonster(args []string, w io.Writer) error {
	if err := parseMonsteropts(args); err != nil {
		return err
	}
	setlogging(monsteropts.log)

	fmt.Fprintf(w, "seed: %v\n", monsteropts.seed)
	lists, err := generate(monsteropts.n, monsteropts.prodfile)
	if err != nil {
		return err
	}
	for i, values := range lists {
		tree := bst.New[float64](fmt.Sprintf("monster-%v", i), nil)
		for _, value := range values {
			tree.Insert(value)
		}
		tree.Validate()
		if err := tree.Prettyprint(w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

//--------
// monster
//--------

func generate(repeat int, prodfile string) ([][]float64, error) {
	text, err := ioutil.ReadFile(prodfile)
	if err != nil {
		return nil, err
	}
	root, ok := compile(parsec.NewScanner(text)).(mcommon.Scope)
	if !ok {
		return nil, fmt.Errorf("unable to compile %v", prodfile)
	}
	seed, bagdir := uint64(monsteropts.seed), monsteropts.bagdir
	scope := monster.BuildContext(root, seed, bagdir, prodfile)
	nterms := scope["_nonterminals"].(mcommon.NTForms)

	lists := make([][]float64, 0, repeat)
	for i := 0; i < repeat; i++ {
		scope = scope.RebuildContext()
		val, ok := evaluate("root", scope, nterms["s"]).(string)
		if !ok {
			return nil, fmt.Errorf("unable to evaluate %v", prodfile)
		}
		var values []float64
		if err := json.Unmarshal([]byte(val), &values); err != nil {
			return nil, err
		}
		lists = append(lists, values)
	}
	return lists, nil
}

func compile(s parsec.Scanner) parsec.ParsecNode {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("%v at %v", r, s.GetCursor())
		}
	}()
	root, _ := monster.Y(s)
	return root
}

func evaluate(
	name string, scope mcommon.Scope, forms []*mcommon.Form) interface{} {

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("%v", r)
		}
	}()
	return monster.EvalForms(name, scope, forms)
}

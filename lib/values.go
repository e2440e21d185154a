package lib

import "fmt"
import "strconv"
import "strings"

import "github.com/bnclabs/gobst/api"
import parsec "github.com/prataprc/goparsec"

// Parsevalues parse a comma separated list of values, like
// `10, 14, 11, 1, 2` or `"b", "a"`. Returned values are either all
// int64, all float64 or all string. Trailing separator, as emitted
// by a tree's Render(), is accepted.
func Parsevalues(text string) (values []interface{}, err error) {
	text = strings.TrimRight(strings.TrimSpace(text), ", \t\r\n")
	if text == "" {
		return nil, api.ErrorEmptyValues
	}

	defer func() {
		if r := recover(); r != nil {
			values, err = nil, fmt.Errorf("%w: %v", api.ErrorInvalidValue, r)
		}
	}()

	root, scanner := yvalues(parsec.NewScanner([]byte(text)))
	if !scanner.Endof() {
		fmsg := "%w: at offset %v"
		return nil, fmt.Errorf(fmsg, api.ErrorInvalidValue, scanner.GetCursor())
	}
	values, _ = root.([]interface{})
	if len(values) == 0 {
		return nil, api.ErrorEmptyValues
	}
	for _, value := range values[1:] {
		if fmt.Sprintf("%T", value) != fmt.Sprintf("%T", values[0]) {
			fmsg := "%w: %v(%T) and %v(%T)"
			return nil, fmt.Errorf(fmsg, api.ErrorMixedValues,
				values[0], values[0], value, value)
		}
	}
	return values, nil
}

var yvalues = parsec.Kleene(
	func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		values := make([]interface{}, 0, len(nodes))
		for _, node := range nodes {
			if value, ok := node.(lvalue); ok {
				values = append(values, value.v)
			}
		}
		return values
	},
	yvalue,
	parsec.Atom(",", "COMMA"),
)

var yvalue = parsec.OrdChoice(
	func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		if len(nodes) == 0 {
			return nil
		}
		switch node := nodes[0].(type) {
		case string: // double quoted, escapes already decoded.
			return lvalue{node[1 : len(node)-1]}
		case *parsec.Terminal:
			return number2value(node)
		}
		return nil
	},
	parsec.Float(),
	parsec.Int(),
	parsec.String(),
)

type lvalue struct{ v interface{} }

func number2value(t *parsec.Terminal) lvalue {
	if n, err := strconv.ParseInt(t.Value, 10, 64); err == nil {
		return lvalue{n}
	}
	f, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		panic(fmt.Errorf("invalid number %q", t.Value))
	}
	return lvalue{f}
}

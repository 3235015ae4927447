package script

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/fbdraw"
)

// ScreenName is the predefined name of the engine's root canvas.
const ScreenName = "screen"

// Script is a parsed scene script.
type Script struct {
	// Name is an optional title from the document's "name" key.
	Name string

	// Dir is the directory relative font paths are resolved against.
	// ParseFile sets it to the script's directory.
	Dir string

	Steps []Step
}

// Step is one validated operation.
type Step struct {
	Op   string
	Line int

	// As is the name the step's result canvas is bound to.
	As string

	// Args holds the arguments in order. Colour steps hold no Args and
	// carry Color instead.
	Args  []Arg
	Color fbdraw.RGBA
}

// Arg is one step argument: a number, or a string for paths, text and
// canvas names.
type Arg struct {
	Num float64
	Str string
}

type argKind int

const (
	kindNumber argKind = iota
	kindString
	kindCanvas
)

func (k argKind) String() string {
	switch k {
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	default:
		return "canvas name"
	}
}

type opSpec struct {
	args     []argKind
	optional int  // trailing args that may be omitted
	colour   bool // four numbers or one hex string
	binds    bool // result must be named with "as"
}

var ops = map[string]opSpec{
	"canvas":    {args: []argKind{kindNumber, kindNumber}, binds: true},
	"font":      {args: []argKind{kindString, kindNumber}},
	"text":      {args: []argKind{kindString}, binds: true},
	"clear":     {colour: true},
	"push":      {args: []argKind{kindCanvas}, optional: 1},
	"pop":       {},
	"translate": {args: []argKind{kindNumber, kindNumber}},
	"color":     {colour: true},
	"box":       {args: []argKind{kindNumber, kindNumber, kindNumber, kindNumber}},
	"blit":      {args: []argKind{kindNumber, kindNumber, kindCanvas}},
	"render":    {args: []argKind{kindCanvas}, optional: 1},
	"sleep":     {args: []argKind{kindNumber}},
	"width":     {args: []argKind{kindCanvas}},
	"height":    {args: []argKind{kindCanvas}},
	"now":       {},
}

// ParseFile reads and parses the script at path.
func ParseFile(path string) (*Script, error) {
	// #nosec G304 -- script path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// Parse parses a script. The document is either a list of steps or a
// mapping with "steps" and an optional "name".
func Parse(data []byte) (*Script, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	s := &Script{}
	if len(doc.Content) == 0 {
		return s, nil
	}

	root := doc.Content[0]
	var steps *yaml.Node
	switch root.Kind {
	case yaml.SequenceNode:
		steps = root
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			key, val := root.Content[i], root.Content[i+1]
			switch key.Value {
			case "name":
				s.Name = val.Value
			case "steps":
				if val.Kind != yaml.SequenceNode {
					return nil, argErrorf(val.Line, "", "steps must be a list")
				}
				steps = val
			default:
				return nil, argErrorf(key.Line, "", "unknown key %q", key.Value)
			}
		}
	default:
		return nil, argErrorf(root.Line, "", "script must be a list of steps or a mapping with steps")
	}
	if steps == nil {
		return s, nil
	}

	s.Steps = make([]Step, 0, len(steps.Content))
	for _, n := range steps.Content {
		st, err := parseStep(n)
		if err != nil {
			return nil, err
		}
		s.Steps = append(s.Steps, st)
	}
	return s, nil
}

func parseStep(n *yaml.Node) (Step, error) {
	st := Step{Line: n.Line}

	var args *yaml.Node
	switch n.Kind {
	case yaml.ScalarNode:
		st.Op = n.Value
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Value == "as" {
				if val.Kind != yaml.ScalarNode || val.Value == "" {
					return st, argErrorf(val.Line, "", "as must be a name")
				}
				st.As = val.Value
				continue
			}
			if st.Op != "" {
				return st, argErrorf(key.Line, st.Op, "more than one operation in a step (%q)", key.Value)
			}
			st.Op = key.Value
			args = val
		}
	default:
		return st, argErrorf(n.Line, "", "step must be an operation name or a mapping")
	}

	spec, ok := ops[st.Op]
	if !ok {
		return st, argErrorf(n.Line, st.Op, "unknown operation")
	}
	if spec.binds && st.As == "" {
		return st, argErrorf(n.Line, st.Op, "result must be named with as")
	}
	if !spec.binds && st.As != "" {
		return st, argErrorf(n.Line, st.Op, "operation has no result to name")
	}
	if st.As == ScreenName {
		return st, argErrorf(n.Line, st.Op, "%q is reserved", ScreenName)
	}

	nodes, err := argNodes(st.Op, args)
	if err != nil {
		return st, err
	}
	if spec.colour {
		st.Color, err = parseColour(st.Op, n.Line, nodes)
		return st, err
	}

	want := len(spec.args)
	if len(nodes) > want || len(nodes) < want-spec.optional {
		return st, argErrorf(n.Line, st.Op, "expected %s, got %d", countText(want, spec.optional), len(nodes))
	}
	st.Args = make([]Arg, len(nodes))
	for i, a := range nodes {
		st.Args[i], err = parseArg(st.Op, a, spec.args[i], i)
		if err != nil {
			return st, err
		}
	}
	return st, nil
}

// argNodes flattens an argument node: nothing, one scalar or a list of
// scalars.
func argNodes(op string, n *yaml.Node) ([]*yaml.Node, error) {
	if n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		return nil, nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return []*yaml.Node{n}, nil
	case yaml.SequenceNode:
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return nil, argErrorf(c.Line, op, "arguments must be scalars")
			}
		}
		return n.Content, nil
	default:
		return nil, argErrorf(n.Line, op, "arguments must be a scalar or a list")
	}
}

func parseArg(op string, n *yaml.Node, kind argKind, i int) (Arg, error) {
	switch kind {
	case kindNumber:
		var f float64
		if n.Tag != "!!int" && n.Tag != "!!float" {
			return Arg{}, argErrorf(n.Line, op, "argument %d: expected %s, got %q", i+1, kind, n.Value)
		}
		if err := n.Decode(&f); err != nil {
			return Arg{}, argErrorf(n.Line, op, "argument %d: %v", i+1, err)
		}
		return Arg{Num: f}, nil
	default:
		if n.Tag == "!!null" || (kind == kindCanvas && n.Value == "") {
			return Arg{}, argErrorf(n.Line, op, "argument %d: expected %s", i+1, kind)
		}
		return Arg{Str: n.Value}, nil
	}
}

func parseColour(op string, line int, nodes []*yaml.Node) (fbdraw.RGBA, error) {
	switch len(nodes) {
	case 1:
		c, err := fbdraw.ParseHex(nodes[0].Value)
		if err != nil {
			return c, argErrorf(nodes[0].Line, op, "%v", err)
		}
		return c, nil
	case 4:
		var v [4]float64
		for i, n := range nodes {
			a, err := parseArg(op, n, kindNumber, i)
			if err != nil {
				return fbdraw.RGBA{}, err
			}
			v[i] = a.Num
		}
		return fbdraw.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
	default:
		return fbdraw.RGBA{}, argErrorf(line, op, "expected 4 numbers or a hex colour, got %d arguments", len(nodes))
	}
}

func countText(want, optional int) string {
	if optional == 0 {
		return fmt.Sprintf("%d arguments", want)
	}
	return fmt.Sprintf("%d to %d arguments", want-optional, want)
}

package calcpro_test

import (
	"testing"

	"github.com/zephyrtronium/calcpro"
)

func FuzzParse(f *testing.F) {
	f.Add("1+1")
	f.Add("2^-3^2")
	f.Add("-sqrt(pow(2, 3), x)")
	f.Add("2x3//4%5")
	f.Add("((1.5))")
	f.Add("1+2+3+4+5+6+7+8+9")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := calcpro.Parse(s)
		if err != nil {
			if _, ok := err.(calcpro.InputError); !ok {
				t.Fatalf("%q gave non-input error %#v", s, err)
			}
			return
		}
		// Left-associative chains can parse into trees deeper than the
		// limit. Canonical text must parse under the tree's own depth.
		c := e.String()
		d := treeDepth(e.Root())
		if d < calcpro.DefaultMaxDepth {
			d = calcpro.DefaultMaxDepth
		}
		e2, err := calcpro.Parse(c, calcpro.MaxDepth(d))
		if err != nil {
			t.Fatalf("%q -> %q failed to parse: %v", s, c, err)
		}
		if c2 := e2.String(); c2 != c {
			t.Fatalf("%q -> %q -> %q", s, c, c2)
		}
	})
}

func treeDepth(n calcpro.Node) int {
	switch n := n.(type) {
	case *calcpro.Unary:
		return 1 + treeDepth(n.X)
	case *calcpro.Binary:
		return 1 + max(treeDepth(n.L), treeDepth(n.R))
	case *calcpro.Call:
		d := 0
		for _, arg := range n.Args {
			d = max(d, treeDepth(arg))
		}
		return 1 + d
	default:
		return 1
	}
}

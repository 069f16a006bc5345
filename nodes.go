package calcpro

import (
	"strconv"
	"strings"
)

// Node is a node in the syntax tree of an expression. The set of node types
// is closed: *Num, *Ident, *Unary, *Binary, and *Call. Nodes are created by
// the parser and are never modified afterward.
type Node interface {
	fmt(b *strings.Builder)
	node()
}

// Num is a number literal.
type Num struct {
	Value float64
}

// Ident is a reference to a named constant.
type Ident struct {
	Name string
}

// Unary is a unary operator applied to an operand.
type Unary struct {
	Op UnaryOp
	X  Node
}

// Binary is a binary operator applied to two operands.
type Binary struct {
	Op   BinaryOp
	L, R Node
}

// Call is a call of a named function.
type Call struct {
	Name string
	Args []Node
}

func (*Num) node()    {}
func (*Ident) node()  {}
func (*Unary) node()  {}
func (*Binary) node() {}
func (*Call) node()   {}

// UnaryOp is a unary operator.
type UnaryOp int8

const (
	Neg UnaryOp = iota + 1
	Plus
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Plus:
		return "+"
	default:
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// BinaryOp is a binary operator.
type BinaryOp int8

const (
	Add BinaryOp = iota + 1
	Sub
	Mul
	Div
	Mod
	Pow
	FloorDiv
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Pow:
		return "^"
	case FloorDiv:
		return "//"
	default:
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// The fmt methods write the canonical text of a node. Every operator
// application is parenthesized, so the text parses back to the same tree.

func (n *Num) fmt(b *strings.Builder) {
	b.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
}

func (n *Ident) fmt(b *strings.Builder) {
	b.WriteString(n.Name)
}

func (n *Unary) fmt(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Op.String())
	n.X.fmt(b)
	b.WriteByte(')')
}

func (n *Binary) fmt(b *strings.Builder) {
	b.WriteByte('(')
	n.L.fmt(b)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
	b.WriteByte(' ')
	n.R.fmt(b)
	b.WriteByte(')')
}

func (n *Call) fmt(b *strings.Builder) {
	b.WriteString(n.Name)
	b.WriteByte('(')
	for i, arg := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.fmt(b)
	}
	b.WriteByte(')')
}

package calcpro

import (
	"math"
	"strconv"
	"strings"
)

// Expr = Sum
// Sum = Product { ('+' | '-') Product }
// Product = Unary { ('*' | 'x' | '/' | '//' | '%') Unary }
// Unary = ('-' | '+') Unary | Power
// Power = Primary [ ('^' | '**') Unary ]
// Primary = num | name | name '(' [ Expr { ',' Expr } ] ')' | '(' Expr ')'

// Expr is a parsed expression. An Expr is immutable and may be evaluated any
// number of times, concurrently, with any tables.
type Expr struct {
	// n is the root node of the expression.
	n Node
}

// parsectx holds general data for parsing.
type parsectx struct {
	// parens is the current nesting of parentheses, including those of calls.
	parens int
	// max is the nesting limit.
	max int
}

// Parse parses an expression. The only option which affects parsing is
// MaxDepth.
func Parse(src string, opts ...Option) (*Expr, error) {
	if err := precheck(src); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	scan := lex(strings.NewReader(src))
	p := parsectx{max: cfg.maxDepth}
	n, err := parseterm(scan, &p, exprprec, 1)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok, "")
	}
	return &Expr{n: n}, nil
}

// parseterm parses a sequence of operands joined by binary operators that bind
// more tightly than until. d is the least depth the resulting node can have in
// the tree. If there is no error, then parseterm pushes the last token it
// scans, including EOF.
func parseterm(scan *lexer, p *parsectx, until operator, d int) (Node, error) {
	n, err := parselhs(scan, p, until, d)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == 0 {
				return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "binary operator"}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec, d+1)
			if err != nil {
				return nil, err
			}
			n = &Binary{Op: BinaryOp(prec.op), L: n, R: rhs}
		case tokenClose, tokenSep, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		case tokenNum, tokenIdent, tokenOpen:
			// Juxtaposition is not multiplication.
			return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "operator"}
		default:
			panic("calcpro: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first operand of a term, including any unary operators
// applied to it.
func parselhs(scan *lexer, p *parsectx, until operator, d int) (Node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	// Each parenthesis in canonical text belongs to an ancestor node, so
	// parentheses nest at most one less than the tree depth.
	if d > p.max || p.parens >= p.max {
		return nil, &DepthError{Col: tok.pos, Limit: p.max}
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		// Underflow to zero is fine, but an infinite literal is not a number
		// anyone can write.
		if err != nil && (!isRange(err) || math.IsInf(v, 0)) {
			return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "finite number"}
		}
		return &Num{Value: v}, nil
	case tokenIdent:
		next, err := scan.next()
		if err != nil {
			return nil, err
		}
		if next.kind == tokenOpen {
			return parsecall(scan, p, tok, d)
		}
		scan.push(next)
		return &Ident{Name: tok.text}, nil
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == 0 {
			return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "expression"}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		x, err := parseterm(scan, p, prec, d+1)
		if err != nil {
			return nil, err
		}
		return &Unary{Op: UnaryOp(prec.op), X: x}, nil
	case tokenOpen:
		p.parens++
		n, err := parseterm(scan, p, exprprec, d)
		p.parens--
		if err != nil {
			return nil, err
		}
		if end := scan.must(); end.kind != tokenClose {
			return nil, itShouldNotHaveEndedThisWay(end, ")")
		}
		return n, nil
	case tokenClose, tokenSep, tokenEOF:
		return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "expression"}
	default:
		panic("calcpro: unknown token: " + tok.String())
	}
}

// parsecall parses the argument list of a call after its open parenthesis.
func parsecall(scan *lexer, p *parsectx, name lexToken, d int) (Node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenClose {
		// Niladic call. No function can accept it, but validation reports
		// that more precisely than a syntax error.
		return &Call{Name: name.text}, nil
	}
	scan.push(tok)
	p.parens++
	defer func() { p.parens-- }()
	var args []Node
	for {
		arg, err := parseterm(scan, p, exprprec, d+1)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch end := scan.must(); end.kind {
		case tokenSep:
			continue
		case tokenClose:
			return &Call{Name: name.text, Args: args}, nil
		default:
			return nil, itShouldNotHaveEndedThisWay(end, "',' or ')'")
		}
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. want describes what should have been
// there instead, if anything.
func itShouldNotHaveEndedThisWay(tok lexToken, want string) error {
	switch tok.kind {
	case tokenEOF, tokenClose, tokenSep:
		return &SyntaxError{Col: tok.pos, Token: tok.text, Want: want}
	default:
		panic("calcpro: it really should not have ended this way: " + tok.String())
	}
}

func isRange(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// Root returns the root node of the expression.
func (e *Expr) Root() Node {
	return e.n
}

// String returns the canonical text of the expression. Every operator
// application is parenthesized, and parsing the result gives an identical
// tree.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the BinaryOp or UnaryOp to use when this operator is selected.
	op int8
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of 0.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, int8(Add)}
	case "-":
		return operator{1, false, int8(Sub)}
	case "*", "x":
		return operator{5, false, int8(Mul)}
	case "/":
		return operator{5, false, int8(Div)}
	case "//":
		return operator{5, false, int8(FloorDiv)}
	case "%":
		return operator{5, false, int8(Mod)}
	case "^", "**":
		return operator{15, true, int8(Pow)}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of 0.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, int8(Plus)}
	case "-":
		return operator{10, true, int8(Neg)}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, 0}

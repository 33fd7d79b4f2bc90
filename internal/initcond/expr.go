package initcond

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Whitelisted call names for expression profiles. Anything outside this
// set is rejected and the expression falls back to Zero.
var exprFuncs = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"exp":  math.Exp,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}

// FromExpression compiles a restricted arithmetic expression over the
// variable x into a Profile. The grammar admits numbers, x, pi, the
// operators + - * / ^ (or **), parentheses, and calls to sin, cos, exp,
// sqrt, abs. It fails closed: any unparseable or disallowed input
// yields the Zero profile rather than an error, so untrusted text can
// never reach arbitrary code or crash a solve.
func FromExpression(src string) Profile {
	f, err := ParseExpression(src)
	if err != nil {
		return Zero{}
	}
	return f
}

// ParseExpression is the error-reporting form of FromExpression, used
// where the caller wants to surface the rejection reason.
func ParseExpression(src string) (Func, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &exprParser{toks: toks}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("unexpected token %q", p.peek().text)
	}
	return Func(node), nil
}

type tokKind int

const (
	tokNum tokKind = iota
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokKind
	text string
	num  float64
}

func lex(src string) ([]token, error) {
	toks := make([]token, 0, len(src)/2)
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(src) && (src[j] >= '0' && src[j] <= '9' || src[j] == '.') {
				j++
			}
			v, err := strconv.ParseFloat(src[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q", src[i:j])
			}
			toks = append(toks, token{kind: tokNum, num: v, text: src[i:j]})
			i = j
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
			j := i
			for j < len(src) && (src[j] >= 'a' && src[j] <= 'z' || src[j] >= 'A' && src[j] <= 'Z' || src[j] == '_' || src[j] >= '0' && src[j] <= '9') {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: strings.ToLower(src[i:j])})
			i = j
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		case c == '*' && i+1 < len(src) && src[i+1] == '*':
			toks = append(toks, token{kind: tokOp, text: "^"})
			i += 2
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			toks = append(toks, token{kind: tokOp, text: string(c)})
			i++
		default:
			return nil, fmt.Errorf("illegal character %q", string(c))
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty expression")
	}
	return toks, nil
}

type exprNode func(x float64) float64

type exprParser struct {
	toks []token
	pos  int
}

func (p *exprParser) done() bool  { return p.pos >= len(p.toks) }
func (p *exprParser) peek() token { return p.toks[p.pos] }

func (p *exprParser) advance() token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *exprParser) acceptOp(op string) bool {
	if !p.done() && p.peek().kind == tokOp && p.peek().text == op {
		p.pos++
		return true
	}
	return false
}

func (p *exprParser) parseExpr() (exprNode, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.acceptOp("+"):
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			l := left
			left = func(x float64) float64 { return l(x) + right(x) }
		case p.acceptOp("-"):
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			l := left
			left = func(x float64) float64 { return l(x) - right(x) }
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseTerm() (exprNode, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.acceptOp("*"):
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			l := left
			left = func(x float64) float64 { return l(x) * right(x) }
		case p.acceptOp("/"):
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			l := left
			left = func(x float64) float64 { return l(x) / right(x) }
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseUnary() (exprNode, error) {
	if p.acceptOp("-") {
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return func(x float64) float64 { return -inner(x) }, nil
	}
	return p.parsePower()
}

func (p *exprParser) parsePower() (exprNode, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	// Right associative: 2^3^2 is 2^(3^2).
	if p.acceptOp("^") {
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return func(x float64) float64 { return math.Pow(base(x), exp(x)) }, nil
	}
	return base, nil
}

func (p *exprParser) parsePrimary() (exprNode, error) {
	if p.done() {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	t := p.advance()
	switch t.kind {
	case tokNum:
		v := t.num
		return func(float64) float64 { return v }, nil
	case tokIdent:
		switch t.text {
		case "x":
			return func(x float64) float64 { return x }, nil
		case "pi":
			return func(float64) float64 { return math.Pi }, nil
		}
		fn, ok := exprFuncs[t.text]
		if !ok {
			return nil, fmt.Errorf("disallowed symbol %q", t.text)
		}
		if p.done() || p.peek().kind != tokLParen {
			return nil, fmt.Errorf("%s requires arguments", t.text)
		}
		p.advance()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.done() || p.peek().kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.advance()
		return func(x float64) float64 { return fn(arg(x)) }, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.done() || p.peek().kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.advance()
		return inner, nil
	default:
		return nil, fmt.Errorf("unexpected token %q", t.text)
	}
}

package surface

import "github.com/pkg/errors"

// ErrParse is wrapped with context and surfaced to the CLI boundary.
var ErrParse = errors.New("parse error")

type parser struct {
	toks []Token
	pos  int
}

// Parse tokenizes and parses src into a single top-level Node. The
// top-level node is an application (operator plus operands, or a bare
// literal/variable) written without its own enclosing parens; every operand
// beneath it is parenthesized, per the grammar in the external interfaces.
func Parse(src string) (*Node, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseApplication()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != TokEOF {
		return nil, errors.Wrapf(ErrParse, "unexpected trailing input at offset %d", p.peek().Offset)
	}
	return n, nil
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// parseApplication parses a bare Number, a bare /N variable, or an operator
// name followed by zero or more parenthesized operands.
func (p *parser) parseApplication() (*Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokNumber:
		p.advance()
		return &Node{IsNumber: true, Number: tok.Number}, nil

	case TokSlash:
		p.advance()
		idx := p.peek()
		if idx.Kind != TokNumber {
			return nil, errors.Wrapf(ErrParse, "expected a variable index after '/' at offset %d", idx.Offset)
		}
		p.advance()
		return &Node{IsVar: true, VarIndex: uint32(idx.Number)}, nil

	case TokIdent:
		p.advance()
		node := &Node{Op: tok.Text}
		for p.peek().Kind == TokLParen {
			operand, err := p.parseOperand()
			if err != nil {
				return nil, err
			}
			node.Kids = append(node.Kids, operand)
		}
		return node, nil

	default:
		return nil, errors.Wrapf(ErrParse, "unexpected token %s at offset %d", tok.Kind.String(), tok.Offset)
	}
}

// parseOperand parses a single "(" Application ")" group.
func (p *parser) parseOperand() (*Node, error) {
	open := p.peek()
	if open.Kind != TokLParen {
		return nil, errors.Wrapf(ErrParse, "expected '(' at offset %d", open.Offset)
	}
	p.advance()
	inner, err := p.parseApplication()
	if err != nil {
		return nil, err
	}
	closeTok := p.peek()
	if closeTok.Kind != TokRParen {
		return nil, errors.Wrapf(ErrParse, "expected ')' at offset %d", closeTok.Offset)
	}
	p.advance()
	return inner, nil
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package parser

import (
	"io"
	"log"
	"strconv"

	"github.com/ezrec/vmasm/ir"
	"github.com/ezrec/vmasm/keyword"
	"github.com/ezrec/vmasm/lexical"
	"github.com/ezrec/vmasm/report"
)

// Parser is a single pass line assembler for the stack machine.
//
// Every line terminator closes one statement. End of input closes a final,
// unterminated line if any token was seen on it.
type Parser struct {
	Verbose  bool             // If set, verbosely logs tokens and statements.
	Keywords *keyword.Table   // Keyword table. If nil, keyword.Default().
	Reporter *report.Reporter // Diagnostics sink. If nil, a new one is made.

	scanner   *lexical.Scanner
	lookahead lexical.Token
	line      line
	lineno    int
	ir        *ir.IR
}

// Parse consumes input and returns its intermediate representation.
// Diagnostics go to the Reporter; err is only set if input could not be read.
func (p *Parser) Parse(input io.Reader) (rep *ir.IR, err error) {
	if p.Keywords == nil {
		p.Keywords = keyword.Default()
	}
	if p.Reporter == nil {
		p.Reporter = &report.Reporter{}
	}

	p.scanner = lexical.NewScanner(input)
	p.ir = &ir.IR{}
	p.line = line{}
	p.lineno = 1

	p.advance()
	for p.lookahead.Kind != lexical.TOKEN_EOF {
		p.dispatch(p.lookahead)
		p.advance()
	}

	if p.line.seen {
		p.endLine()
	}

	err = p.scanner.Err()
	if err != nil {
		return
	}

	rep = p.ir
	return
}

// advance fetches the next lookahead token.
func (p *Parser) advance() {
	p.lookahead = p.scanner.Next()
	if p.Verbose {
		log.Printf("token %v\n", p.lookahead)
	}
}

// dispatch applies one token to the current line.
func (p *Parser) dispatch(tok lexical.Token) {
	if tok.Kind == lexical.TOKEN_EOL {
		p.endLine()
		return
	}

	p.line.seen = true

	switch tok.Kind {
	case lexical.TOKEN_COMMENT:
		p.line.comment = &ir.Comment{Text: tok.Text, Pos: tok.Pos}
	case lexical.TOKEN_MNEMONIC:
		switch p.line.state {
		case lineEmpty:
			p.line.mnemonic = tok
			p.line.state = lineMnemonic
		default:
			p.Reporter.Record(tok.Pos, ErrInstructionExtra)
		}
	case lexical.TOKEN_OPERAND:
		switch p.line.state {
		case lineEmpty:
			p.Reporter.Record(tok.Pos, ErrOperandOrphan)
		case lineMnemonic:
			p.line.operand = p.operand(tok)
			p.line.state = lineOperand
		default:
			p.Reporter.Record(tok.Pos, ErrOperandExtra)
		}
	case lexical.TOKEN_UNKNOWN:
		p.Reporter.Record(tok.Pos, ErrUnknownToken)
	}
}

// operand parses a signed decimal operand. An unparsable numeral is
// reported and kept with a zero value.
func (p *Parser) operand(tok lexical.Token) (op *ir.Operand) {
	op = &ir.Operand{Text: tok.Text, Pos: tok.Pos}

	value, err := strconv.Atoi(tok.Text)
	if err != nil {
		p.Reporter.Record(tok.Pos, ErrOperandInvalid(tok.Text))
		return
	}
	op.Value = value

	return
}

// endLine finishes, validates and stores the current line.
func (p *Parser) endLine() {
	ls := p.line.finish(p.lineno, p.Keywords)

	pos, err := Validate(p.Keywords, ls)
	if err != nil {
		p.Reporter.Record(pos, err)
	}

	if p.Verbose {
		log.Printf("%v: %v\n", p.lineno, ls)
	}

	p.ir.Append(ls)
	p.lineno++
	p.line = line{}
}

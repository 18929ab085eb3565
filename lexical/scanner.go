// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lexical

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
	"unicode"
)

const (
	COMMENT_START = ';'  // Starts a comment that runs to end of line.
	MINUS_SIGN    = '-'  // Leading sign of a negative operand.
	LINE_END      = '\n' // Line terminator.

	eof = rune(-1)
)

// Scanner reads tokens from a single sequential source.
type Scanner struct {
	src  *bufio.Reader
	pos  Position // Position of the next rune to read.
	prev Position // Position of the last rune read.
	err  error
	done bool
}

// NewScanner creates a scanner that owns input until it is exhausted.
func NewScanner(input io.Reader) *Scanner {
	return &Scanner{
		src: bufio.NewReader(input),
		pos: Position{Line: 1, Column: 1},
	}
}

// Err returns the first non-EOF read error, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Pos returns the position of the next unread rune.
func (s *Scanner) Pos() Position {
	return s.pos
}

// read consumes one rune, returning eof once the source is exhausted.
func (s *Scanner) read() rune {
	if s.done {
		return eof
	}

	ch, size, err := s.src.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		s.done = true
		return eof
	}

	s.prev = s.pos
	s.pos.Offset += size
	if ch == LINE_END {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}

	return ch
}

// unread pushes back the last rune read. Never call it after eof.
func (s *Scanner) unread() {
	_ = s.src.UnreadRune()
	s.pos = s.prev
}

func isIgnored(ch rune) bool {
	return ch != LINE_END && unicode.IsSpace(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// word accumulates a mnemonic or operand run. A trailing blank is consumed,
// a line end or comment start is left for the next token.
func (s *Scanner) word(ch rune) string {
	var sb strings.Builder
	for {
		sb.WriteRune(ch)
		ch = s.read()
		switch {
		case ch == eof, isIgnored(ch):
			return sb.String()
		case ch == LINE_END, ch == COMMENT_START:
			s.unread()
			return sb.String()
		}
	}
}

// comment accumulates up to, but not including, the line end.
func (s *Scanner) comment(ch rune) string {
	var sb strings.Builder
	for ch != eof {
		if ch == LINE_END {
			s.unread()
			break
		}
		sb.WriteRune(ch)
		ch = s.read()
	}

	return strings.TrimSuffix(sb.String(), "\r")
}

// Next returns the next token. Once TOKEN_EOF has been returned, every
// further call returns TOKEN_EOF again.
func (s *Scanner) Next() (tok Token) {
	var ch rune
	for {
		tok.Pos = s.pos
		ch = s.read()
		if !isIgnored(ch) {
			break
		}
	}

	switch {
	case unicode.IsLetter(ch):
		tok.Kind = TOKEN_MNEMONIC
		tok.Text = s.word(ch)
	case isDigit(ch), ch == MINUS_SIGN:
		tok.Kind = TOKEN_OPERAND
		tok.Text = s.word(ch)
	case ch == COMMENT_START:
		tok.Kind = TOKEN_COMMENT
		tok.Text = s.comment(ch)
	case ch == LINE_END:
		tok.Kind = TOKEN_EOL
	case ch == eof:
		tok.Kind = TOKEN_EOF
	default:
		tok.Kind = TOKEN_UNKNOWN
		tok.Text = string(ch)
	}

	return
}

// All yields every remaining token, up to and including TOKEN_EOF.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := s.Next()
			if !yield(tok) || tok.Kind == TOKEN_EOF {
				return
			}
		}
	}
}

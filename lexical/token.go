package lexical

import (
	"fmt"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_MNEMONIC = TokenKind(0) // mnemonic
	TOKEN_OPERAND  = TokenKind(1) // operand
	TOKEN_COMMENT  = TokenKind(2) // comment
	TOKEN_EOL      = TokenKind(3) // eol
	TOKEN_EOF      = TokenKind(4) // eof
	TOKEN_UNKNOWN  = TokenKind(5) // unknown
)

// Token is a single classified lexeme.
type Token struct {
	Kind TokenKind // Lexical class.
	Text string    // Source text. Empty for TOKEN_EOL and TOKEN_EOF.
	Pos  Position  // Position of the first character.
}

func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_EOL, TOKEN_EOF:
		return fmt.Sprintf("%v %v", tok.Pos, tok.Kind)
	}
	return fmt.Sprintf("%v %v %q", tok.Pos, tok.Kind, tok.Text)
}

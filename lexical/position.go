package lexical

import (
	"fmt"
)

// Position is a location in the source text.
// The zero value is an invalid position.
type Position struct {
	Line   int // 1-based line number.
	Column int // 1-based column number, counted in runes.
	Offset int // 0-based byte offset.
}

// IsValid reports whether the position refers to a source line.
func (pos Position) IsValid() bool {
	return pos.Line > 0
}

// String returns the position as "line:column".
func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

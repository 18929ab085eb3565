// Package ir holds the intermediate representation produced by the parser:
// one LineStatement per source line, in source order.
package ir

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/vmasm/keyword"
	"github.com/ezrec/vmasm/lexical"
)

// Operand is a literal integer argument.
type Operand struct {
	Text  string           // Source text, sign included.
	Value int              // Parsed value.
	Pos   lexical.Position // Position of the first character.
}

// Comment is a trailing comment, marker included.
type Comment struct {
	Text string
	Pos  lexical.Position
}

// Instruction is a mnemonic with its optional operand.
type Instruction struct {
	Mnemonic keyword.Mnemonic // Line local mnemonic, mode resolved.
	Operand  *Operand         // Operand, or nil.
	Pos      lexical.Position // Position of the mnemonic.
}

func (ins *Instruction) String() string {
	if ins.Operand == nil {
		return ins.Mnemonic.Name
	}
	return fmt.Sprintf("%v %v", ins.Mnemonic.Name, ins.Operand.Value)
}

// LineStatement is one finished source line.
type LineStatement struct {
	LineNo      int          // 1-based source line.
	Label       string       // Reserved.
	Instruction *Instruction // Instruction, or nil.
	Comment     *Comment     // Comment, or nil.
}

// Empty reports whether the line carries neither instruction nor comment.
func (ls LineStatement) Empty() bool {
	return ls.Instruction == nil && ls.Comment == nil && len(ls.Label) == 0
}

// String renders the statement back as source text.
func (ls LineStatement) String() string {
	var words []string
	if len(ls.Label) != 0 {
		words = append(words, ls.Label+":")
	}
	if ls.Instruction != nil {
		words = append(words, ls.Instruction.String())
	}
	if ls.Comment != nil {
		words = append(words, ls.Comment.Text)
	}
	return strings.Join(words, " ")
}

// IR is the ordered, append only sequence of line statements.
type IR struct {
	statements []LineStatement
}

// Append adds a finished statement.
func (ir *IR) Append(ls LineStatement) {
	ir.statements = append(ir.statements, ls)
}

// Len returns the number of statements.
func (ir *IR) Len() int {
	return len(ir.statements)
}

// At returns the n'th statement.
func (ir *IR) At(n int) LineStatement {
	return ir.statements[n]
}

// Statements yields each statement with its index.
func (ir *IR) Statements() iter.Seq2[int, LineStatement] {
	return func(yield func(int, LineStatement) bool) {
		for n, ls := range ir.statements {
			if !yield(n, ls) {
				return
			}
		}
	}
}

// String lists the statements one per line.
func (ir *IR) String() string {
	var sb strings.Builder
	for _, ls := range ir.statements {
		sb.WriteString(ls.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

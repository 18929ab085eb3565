package parser

import (
	"github.com/ezrec/vmasm/ir"
	"github.com/ezrec/vmasm/keyword"
	"github.com/ezrec/vmasm/lexical"
)

// lineState tracks how much of an instruction the current line holds.
type lineState int

const (
	lineEmpty    = lineState(0) // No mnemonic yet.
	lineMnemonic = lineState(1) // Mnemonic, no operand.
	lineOperand  = lineState(2) // Mnemonic and operand.
)

// line is the in-progress statement for one source line.
type line struct {
	state    lineState
	seen     bool          // Any token since the last line end.
	mnemonic lexical.Token // Valid once state >= lineMnemonic.
	operand  *ir.Operand   // Valid once state == lineOperand.
	comment  *ir.Comment
}

// finish resolves the addressing mode and produces the finished statement.
func (ln *line) finish(lineno int, table *keyword.Table) (ls ir.LineStatement) {
	ls = ir.LineStatement{
		LineNo:  lineno,
		Comment: ln.comment,
	}

	if ln.state == lineEmpty {
		return
	}

	mn := keyword.Mnemonic{
		Name: ln.mnemonic.Text,
		Mode: keyword.MODE_INHERENT,
	}
	if ln.state == lineOperand {
		mn.Mode = keyword.MODE_IMMEDIATE
	}
	canon, ok := table.Lookup(mn.Name)
	if ok {
		mn.Opcode = canon.Opcode
	}

	ls.Instruction = &ir.Instruction{
		Mnemonic: mn,
		Operand:  ln.operand,
		Pos:      ln.mnemonic.Pos,
	}

	return
}

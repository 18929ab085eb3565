package parser

import (
	"github.com/ezrec/vmasm/ir"
	"github.com/ezrec/vmasm/keyword"
	"github.com/ezrec/vmasm/lexical"
)

// Validate checks a finished statement against the keyword table.
// At most one error is returned; statements without an instruction are
// always valid.
func Validate(table *keyword.Table, ls ir.LineStatement) (pos lexical.Position, err error) {
	ins := ls.Instruction
	if ins == nil {
		return
	}

	canon, ok := table.Lookup(ins.Mnemonic.Name)
	switch {
	case !ok:
		pos = ins.Pos
		err = ErrMnemonicInvalid
	case canon.Mode != keyword.MODE_INHERENT && ins.Operand == nil:
		pos = ins.Pos
		err = ErrOperandRequired
	case canon.Mode == keyword.MODE_INHERENT && ins.Operand != nil:
		pos = ins.Operand.Pos
		err = ErrOperandForbidden
	}

	return
}

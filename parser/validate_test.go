package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vmasm/ir"
	"github.com/ezrec/vmasm/keyword"
	"github.com/ezrec/vmasm/lexical"
)

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	table := keyword.Default()
	at := lexical.Position{Line: 4, Column: 2}
	opAt := lexical.Position{Line: 4, Column: 9}

	instruction := func(name string, operand bool) *ir.Instruction {
		ins := &ir.Instruction{Mnemonic: keyword.Mnemonic{Name: name}, Pos: at}
		if operand {
			ins.Operand = &ir.Operand{Text: "1", Value: 1, Pos: opAt}
		}
		return ins
	}

	tests := []struct {
		ls  ir.LineStatement
		pos lexical.Position
		err error
	}{
		{ir.LineStatement{}, lexical.Position{}, nil},
		{ir.LineStatement{Comment: &ir.Comment{Text: ";"}}, lexical.Position{}, nil},
		{ir.LineStatement{Instruction: instruction("halt", false)}, lexical.Position{}, nil},
		{ir.LineStatement{Instruction: instruction("ldv.u3", true)}, lexical.Position{}, nil},
		{ir.LineStatement{Instruction: instruction("nope", false)}, at, ErrMnemonicInvalid},
		{ir.LineStatement{Instruction: instruction("nope", true)}, at, ErrMnemonicInvalid},
		{ir.LineStatement{Instruction: instruction("stv.u3", false)}, at, ErrOperandRequired},
		{ir.LineStatement{Instruction: instruction("xor", true)}, opAt, ErrOperandForbidden},
	}

	for n, test := range tests {
		pos, err := Validate(table, test.ls)
		assert.Equal(test.err, err, "%d", n)
		assert.Equal(test.pos, pos, "%d", n)
	}
}

package parser

import (
	"errors"

	"github.com/ezrec/vmasm/translate"
)

var f = translate.From

var (
	// Lexical errors
	ErrUnknownToken = errors.New(f("Unknown token"))

	// Line errors
	ErrOperandOrphan    = errors.New(f("Operand without instruction."))
	ErrOperandExtra     = errors.New(f("Instruction has more than one operand."))
	ErrInstructionExtra = errors.New(f("Only one instruction per line."))

	// Validation errors
	ErrMnemonicInvalid  = errors.New(f("Invalid mnemonic or directive."))
	ErrOperandRequired  = errors.New(f("Instruction requires an operand."))
	ErrOperandForbidden = errors.New(f("Inherent instruction must not have an operand."))
)

type ErrOperandInvalid string

func (err ErrOperandInvalid) Error() string {
	return f("'%v' is not a number", string(err))
}

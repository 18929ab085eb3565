package keyword

import (
	"github.com/ezrec/vmasm/translate"
)

var f = translate.From

type ErrKeywordDuplicate string

func (err ErrKeywordDuplicate) Error() string {
	return f("keyword %v duplicated", string(err))
}

type ErrKeywordName string

func (err ErrKeywordName) Error() string {
	return f("'%v' is not a valid mnemonic name", string(err))
}

type ErrKeywordOpcode int

func (err ErrKeywordOpcode) Error() string {
	return f("opcode %#x out of range", int(err))
}

type ErrKeywordMode Mode

func (err ErrKeywordMode) Error() string {
	return f("mode %v is not an addressing mode", Mode(err).String())
}

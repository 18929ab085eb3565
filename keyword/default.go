package keyword

import (
	"sync"
)

// stackMachine is the built-in instruction set.
var stackMachine = []Mnemonic{
	{"halt", 0x00, MODE_INHERENT},
	{"pop", 0x01, MODE_INHERENT},
	{"dup", 0x02, MODE_INHERENT},
	{"exit", 0x03, MODE_INHERENT},
	{"ret", 0x04, MODE_INHERENT},
	{"not", 0x0c, MODE_INHERENT},
	{"and", 0x0d, MODE_INHERENT},
	{"or", 0x0e, MODE_INHERENT},
	{"xor", 0x0f, MODE_INHERENT},
	{"neg", 0x10, MODE_INHERENT},
	{"inc", 0x11, MODE_INHERENT},
	{"dec", 0x12, MODE_INHERENT},
	{"add", 0x13, MODE_INHERENT},
	{"sub", 0x14, MODE_INHERENT},
	{"mul", 0x15, MODE_INHERENT},
	{"div", 0x16, MODE_INHERENT},
	{"rem", 0x17, MODE_INHERENT},
	{"shl", 0x18, MODE_INHERENT},
	{"shr", 0x19, MODE_INHERENT},
	{"teq", 0x1a, MODE_INHERENT},
	{"tne", 0x1b, MODE_INHERENT},
	{"tlt", 0x1c, MODE_INHERENT},
	{"tgt", 0x1d, MODE_INHERENT},
	{"tle", 0x1e, MODE_INHERENT},
	{"tge", 0x1f, MODE_INHERENT},
	{"enter.u5", 0x70, MODE_IMMEDIATE},
	{"ldc.i3", 0x90, MODE_IMMEDIATE},
	{"addv.u3", 0x98, MODE_IMMEDIATE},
	{"ldv.u3", 0xa0, MODE_IMMEDIATE},
	{"stv.u3", 0xa8, MODE_IMMEDIATE},
}

var defaultTable = sync.OnceValue(func() *Table {
	table, err := NewTable(stackMachine...)
	if err != nil {
		panic(err)
	}
	return table
})

// Default returns the built-in stack machine keyword table.
func Default() *Table {
	return defaultTable()
}

package keyword

// Mode is an instruction addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_UNRESOLVED = Mode(0) // unresolved
	MODE_INHERENT   = Mode(1) // inherent
	MODE_IMMEDIATE  = Mode(2) // immediate
)

// Mnemonic binds an instruction name to its opcode and addressing mode.
type Mnemonic struct {
	Name   string // Instruction name, as written in source.
	Opcode int    // Canonical opcode.
	Mode   Mode   // Addressing mode.
}

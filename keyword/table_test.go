package keyword

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	table := Default()
	assert.Equal(30, table.Len())
	assert.Same(table, Default())

	mn, ok := table.Lookup("halt")
	assert.True(ok)
	assert.Equal(Mnemonic{"halt", 0x00, MODE_INHERENT}, mn)

	mn, ok = table.Lookup("ldc.i3")
	assert.True(ok)
	assert.Equal(Mnemonic{"ldc.i3", 0x90, MODE_IMMEDIATE}, mn)

	_, ok = table.Lookup("HALT")
	assert.False(ok)
	_, ok = table.Lookup("foo")
	assert.False(ok)
}

func TestTableAll(t *testing.T) {
	assert := assert.New(t)

	list := slices.Collect(Default().All())
	assert.Equal(30, len(list))
	assert.Equal("halt", list[0].Name)
	assert.Equal("stv.u3", list[len(list)-1].Name)
	assert.True(slices.IsSortedFunc(list, func(a, b Mnemonic) int { return a.Opcode - b.Opcode }))
}

func TestNewTableErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := NewTable(Mnemonic{"nop", 0, MODE_INHERENT}, Mnemonic{"nop", 1, MODE_INHERENT})
	assert.ErrorIs(err, ErrKeywordDuplicate("nop"))

	_, err = NewTable(Mnemonic{"9lives", 0, MODE_INHERENT})
	assert.ErrorIs(err, ErrKeywordName("9lives"))

	_, err = NewTable(Mnemonic{"a;b", 0, MODE_INHERENT})
	assert.ErrorIs(err, ErrKeywordName("a;b"))

	_, err = NewTable(Mnemonic{"big", 0x100, MODE_IMMEDIATE})
	assert.ErrorIs(err, ErrKeywordOpcode(0x100))

	_, err = NewTable(Mnemonic{"what", 0x01, MODE_UNRESOLVED})
	assert.ErrorIs(err, ErrKeywordMode(MODE_UNRESOLVED))
}

func TestTableExtend(t *testing.T) {
	assert := assert.New(t)

	base := Default()
	extended, err := base.Extend(Mnemonic{"nop", 0x40, MODE_INHERENT})
	assert.NoError(err)
	assert.Equal(31, extended.Len())
	assert.Equal(30, base.Len())

	_, ok := base.Lookup("nop")
	assert.False(ok)
	_, ok = extended.Lookup("nop")
	assert.True(ok)

	_, err = base.Extend(Mnemonic{"halt", 0x41, MODE_INHERENT})
	assert.ErrorIs(err, ErrKeywordDuplicate("halt"))
}

func TestNilTable(t *testing.T) {
	assert := assert.New(t)

	var table *Table
	_, ok := table.Lookup("halt")
	assert.False(ok)
	assert.Equal(0, table.Len())
	assert.Empty(slices.Collect(table.All()))
}

func TestModeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("inherent", MODE_INHERENT.String())
	assert.Equal("immediate", MODE_IMMEDIATE.String())
	assert.Equal("unresolved", MODE_UNRESOLVED.String())
	assert.Equal("Mode(7)", Mode(7).String())
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	script := []string{
		`inherent("nop", 0x40)`,
		`for n in range(3):`,
		`    immediate("ld.u%d" % n, 0x50 + n)`,
	}

	mnemonics, err := Load("extra.star", strings.NewReader(strings.Join(script, "\n")))
	assert.NoError(err)

	expected := []Mnemonic{
		{"nop", 0x40, MODE_INHERENT},
		{"ld.u0", 0x50, MODE_IMMEDIATE},
		{"ld.u1", 0x51, MODE_IMMEDIATE},
		{"ld.u2", 0x52, MODE_IMMEDIATE},
	}
	assert.Equal(expected, mnemonics)

	table, err := Default().Extend(mnemonics...)
	assert.NoError(err)
	assert.Equal(34, table.Len())
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Load("dup.star", strings.NewReader("inherent(\"nop\", 1)\ninherent(\"nop\", 2)\n"))
	assert.ErrorIs(err, ErrKeywordDuplicate("nop"))

	_, err = Load("range.star", strings.NewReader("immediate(\"ld\", 300)\n"))
	assert.ErrorIs(err, ErrKeywordOpcode(300))

	_, err = Load("args.star", strings.NewReader("inherent(\"nop\")\n"))
	assert.Error(err)

	mnemonics, err := Load("syntax.star", strings.NewReader("inherent(\n"))
	assert.Error(err)
	assert.Nil(mnemonics)
}

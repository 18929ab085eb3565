// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package keyword

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"unicode"
	"unicode/utf8"
)

const (
	OPCODE_MAX = 0xff // Largest encodable opcode.
)

// Table maps mnemonic names to their canonical definition.
// A Table is immutable once built, and safe to share.
type Table struct {
	entry map[string]Mnemonic
}

// ValidName reports whether name can be scanned as a single mnemonic.
func ValidName(name string) bool {
	first, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsLetter(first) {
		return false
	}
	for _, ch := range name {
		if unicode.IsSpace(ch) || ch == ';' {
			return false
		}
	}
	return true
}

func check(mn Mnemonic) (err error) {
	switch {
	case !ValidName(mn.Name):
		err = ErrKeywordName(mn.Name)
	case mn.Opcode < 0 || mn.Opcode > OPCODE_MAX:
		err = ErrKeywordOpcode(mn.Opcode)
	case mn.Mode != MODE_INHERENT && mn.Mode != MODE_IMMEDIATE:
		err = ErrKeywordMode(mn.Mode)
	}
	return
}

// NewTable builds a table from a list of mnemonics.
func NewTable(mnemonics ...Mnemonic) (table *Table, err error) {
	return (&Table{}).Extend(mnemonics...)
}

// Extend returns a new table holding the receiver's entries plus mnemonics.
// Redefining an existing name is an error.
func (table *Table) Extend(mnemonics ...Mnemonic) (extended *Table, err error) {
	entry := make(map[string]Mnemonic, table.Len()+len(mnemonics))
	if table != nil {
		maps.Copy(entry, table.entry)
	}

	for _, mn := range mnemonics {
		err = check(mn)
		if err != nil {
			return
		}
		_, ok := entry[mn.Name]
		if ok {
			err = ErrKeywordDuplicate(mn.Name)
			return
		}
		entry[mn.Name] = mn
	}

	extended = &Table{entry: entry}
	return
}

// Lookup finds a mnemonic by exact, case sensitive name.
func (table *Table) Lookup(name string) (mn Mnemonic, ok bool) {
	if table == nil {
		return
	}
	mn, ok = table.entry[name]
	return
}

// Len returns the number of mnemonics in the table.
func (table *Table) Len() int {
	if table == nil {
		return 0
	}
	return len(table.entry)
}

// All yields the table's mnemonics ordered by opcode, then name.
func (table *Table) All() iter.Seq[Mnemonic] {
	var list []Mnemonic
	if table != nil {
		list = slices.Collect(maps.Values(table.entry))
	}
	slices.SortFunc(list, func(a, b Mnemonic) int {
		return cmp.Or(cmp.Compare(a.Opcode, b.Opcode), cmp.Compare(a.Name, b.Name))
	})
	return slices.Values(list)
}

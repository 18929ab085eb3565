package keyword

import (
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Load executes a Starlark keyword script and returns the mnemonics it
// declares, in declaration order.
//
// The script declares mnemonics with two builtins:
//
//	inherent("halt", 0x00)
//	immediate("ldc.i3", 0x90)
func Load(filename string, src io.Reader) (mnemonics []Mnemonic, err error) {
	var declErr error
	seen := map[string]bool{}

	declare := func(mode Mode) *starlark.Builtin {
		return starlark.NewBuiltin(mode.String(), func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
			var name string
			var opcode int
			err = starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "opcode", &opcode)
			if err != nil {
				return
			}
			mn := Mnemonic{Name: name, Opcode: opcode, Mode: mode}
			err = check(mn)
			if err == nil && seen[name] {
				err = ErrKeywordDuplicate(name)
			}
			if err != nil {
				declErr = err
				return
			}
			seen[name] = true
			mnemonics = append(mnemonics, mn)
			value = starlark.None
			return
		})
	}

	predeclared := starlark.StringDict{
		"inherent":  declare(MODE_INHERENT),
		"immediate": declare(MODE_IMMEDIATE),
	}

	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{TopLevelControl: true}
	_, err = starlark.ExecFileOptions(&opts, &thread, filename, src, predeclared)
	if declErr != nil {
		err = declErr
	}
	if err != nil {
		mnemonics = nil
	}

	return
}

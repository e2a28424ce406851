// Package output writes translation artifacts to a dump directory.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"gcnrecomp/internal/gcn"
	"gcnrecomp/internal/spvasm"
)

// dumper renders input-info structures without pointer addresses so two
// dumps of the same shader compare equal.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// Sdump renders v the way WriteInputInfo does.
func Sdump(v any) string { return dumper.Sdump(v) }

// WriteInstructions writes the decoded program to <name>.gcn.txt.
func WriteInstructions(dir, name string, code *gcn.Code, opts gcn.DumpOptions) error {
	return writeFile(dir, name+".gcn.txt", []byte(code.Dump(opts)))
}

// WriteSource writes generated SPIR-V assembly to <name>.spvasm.
func WriteSource(dir, name, source string) error {
	return writeFile(dir, name+".spvasm", []byte(source))
}

// WriteBinary writes a module to <name>.spv.
func WriteBinary(dir, name string, module []byte) error {
	return writeFile(dir, name+".spv", module)
}

// WriteDisassembly writes the disassembly of a binary module to
// <name>.dis.spvasm.
func WriteDisassembly(dir, name string, module []byte) error {
	m, err := spvasm.ParseBytes(module)
	if err != nil {
		return fmt.Errorf("output: disassemble %s: %w", name, err)
	}
	return writeFile(dir, name+".dis.spvasm", []byte(spvasm.Disassemble(m)))
}

// WriteInputInfo writes a spew dump of a stage input description to
// <name>.info.txt.
func WriteInputInfo(dir, name string, info any) error {
	return writeFile(dir, name+".info.txt", []byte(Sdump(info)))
}

// WriteJSON writes v, indented, to path.
func WriteJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: encode %s: %w", path, err)
	}
	return nil
}

// name may contain path separators for directory grouping.
func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}

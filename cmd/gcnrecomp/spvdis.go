package main

import (
	"flag"
	"fmt"
	"os"

	"gcnrecomp/internal/spvasm"
)

func cmdSpvdis(args []string) error {
	fs := flag.NewFlagSet("spvdis", flag.ExitOnError)
	validate := fs.Bool("validate", false, "also validate the module")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: gcnrecomp spvdis <file.spv>")
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	m, err := spvasm.ParseBytes(data)
	if err != nil {
		return err
	}
	fmt.Print(spvasm.Disassemble(m))
	if *validate {
		if err := spvasm.Validate(m); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "valid")
	}
	return nil
}

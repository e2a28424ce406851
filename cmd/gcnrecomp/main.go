package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "info":
		err = cmdInfo(os.Args[2:])
	case "disasm":
		err = cmdDisasm(os.Args[2:])
	case "inputinfo":
		err = cmdInputInfo(os.Args[2:])
	case "id":
		err = cmdID(os.Args[2:])
	case "recompile":
		err = cmdRecompile(os.Args[2:])
	case "spvdis":
		err = cmdSpvdis(os.Args[2:])
	case "batch":
		err = cmdBatch(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `gcnrecomp: GCN shader to SPIR-V recompiler

Usage:
  gcnrecomp info      (--elf <path> | --raw <path> --base <addr>) --addr <addr>   Print binary header and usage slots
  gcnrecomp disasm    (--elf | --raw) --addr <addr> --type <vs|ps|cs|fs> [--out <dir>]   Dump instructions, optional CFG DOT
  gcnrecomp inputinfo (--elf | --raw) --regs <file> [--json]   Dump stage input descriptions
  gcnrecomp id        (--elf | --raw) --regs <file>            Print shader identities
  gcnrecomp recompile (--elf | --raw) --regs <file> --out <dir>   Write one .spv per stage
  gcnrecomp spvdis    <file.spv>                               Disassemble a SPIR-V module
  gcnrecomp batch     --manifest <file> --out <dir> [--jobs <n>]   Recompile many captures in parallel

Flags shared by disasm, inputinfo, id, recompile and batch:
  --config <file>     JSON options file; flags below override it
  --optimize <mode>   none, size or performance
  --validate          Validate generated modules (default true)
  --next-gen          Decode next-generation encodings
  --names             Print register names and encoding families
  --max-steps <n>     Decode loop cap
  --dump <dir>        Write decoded programs, input info and SPIR-V here
  --log <mode>        console, file or none
  --log-file <path>   Log file for --log=file
`)
}

package main

import (
	"flag"
	"fmt"
	"os"

	"gcnrecomp/internal/stage"
)

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	mf := addMemFlags(fs)
	addr := fs.String("addr", "", "program address")
	jsonOut := fs.Bool("json", false, "output as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *addr == "" {
		return fmt.Errorf("--addr is required")
	}
	a, err := parseAddr(*addr)
	if err != nil {
		return fmt.Errorf("--addr: %w", err)
	}
	mem, err := mf.load()
	if err != nil {
		return err
	}

	bin, err := stage.ReadBinary(mem, a)
	if err != nil {
		return err
	}
	if *jsonOut {
		return writeJSON(os.Stdout, bin)
	}

	fmt.Printf("program 0x%x: %s\n", a, bin.Info)
	fmt.Printf("  code size %d bytes, srt=%v extended=%v\n",
		bin.Info.Length, bin.Info.IsSrt, bin.Info.IsExtendedUsageInfo)
	fmt.Printf("usage slots: %d\n", len(bin.Usage.Slots))
	for i, s := range bin.Usage.Slots {
		fmt.Printf("  %2d: %s\n", i, s)
	}
	return nil
}

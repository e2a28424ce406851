package main

import (
	"flag"
	"fmt"
	"os"

	"gcnrecomp/internal/shaderid"
)

func cmdInputInfo(args []string) error {
	fs := flag.NewFlagSet("inputinfo", flag.ExitOnError)
	mf := addMemFlags(fs)
	of := addOptFlags(fs)
	regs := fs.String("regs", "", "register snapshot JSON")
	jsonOut := fs.Bool("json", false, "output as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *regs == "" {
		return fmt.Errorf("--regs is required")
	}
	r, err := loadRegs(*regs)
	if err != nil {
		return err
	}
	tr, closer, err := translatorFor(mf, of)
	if err != nil {
		return err
	}
	defer closer.Close()

	si, err := inputInfo(tr, r)
	if err != nil {
		return err
	}
	if *jsonOut {
		return writeJSON(os.Stdout, si)
	}
	if si.VS != nil {
		fmt.Printf("vs:\n%s", tr.DumpInputInfo(si.VS))
	}
	if si.PS != nil {
		fmt.Printf("ps:\n%s", tr.DumpInputInfo(si.PS))
	}
	if si.CS != nil {
		fmt.Printf("cs:\n%s", tr.DumpInputInfo(si.CS))
	}
	return nil
}

func cmdID(args []string) error {
	fs := flag.NewFlagSet("id", flag.ExitOnError)
	mf := addMemFlags(fs)
	of := addOptFlags(fs)
	regs := fs.String("regs", "", "register snapshot JSON")
	full := fs.Bool("full", false, "print the whole identity sequence")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *regs == "" {
		return fmt.Errorf("--regs is required")
	}
	r, err := loadRegs(*regs)
	if err != nil {
		return err
	}
	tr, closer, err := translatorFor(mf, of)
	if err != nil {
		return err
	}
	defer closer.Close()

	si, err := inputInfo(tr, r)
	if err != nil {
		return err
	}
	show := func(stage string, id shaderid.ID) {
		fmt.Printf("%s %s\n", stage, id)
		if !*full {
			return
		}
		for i := 0; i < len(id); i += 8 {
			fmt.Printf("  %4d:", i)
			for _, w := range id[i:min(i+8, len(id))] {
				fmt.Printf(" %08x", w)
			}
			fmt.Println()
		}
	}
	if si.VS != nil {
		show("vs", tr.IDVS(si.VS))
	}
	if si.PS != nil {
		show("ps", tr.IDPS(si.PS))
	}
	if si.CS != nil {
		show("cs", tr.IDCS(si.CS))
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gcnrecomp/internal/debug"
	"gcnrecomp/internal/translator"
)

// module is one recompiled stage.
type module struct {
	Stage string
	Data  []byte
}

// recompile translates every stage in r. The pixel stage sees the vertex
// stage's layout so the two share one pipeline layout.
func recompile(tr *translator.Translator, r *regsFile) ([]module, error) {
	si, err := inputInfo(tr, r)
	if err != nil {
		return nil, err
	}
	var mods []module
	if si.VS != nil {
		data, err := tr.RecompileVS(r.VS, si.VS)
		if err != nil {
			return nil, err
		}
		mods = append(mods, module{"vs", data})
	}
	if si.PS != nil {
		data, err := tr.RecompilePS(r.PS, si.PS)
		if err != nil {
			return nil, err
		}
		mods = append(mods, module{"ps", data})
	}
	if si.CS != nil {
		data, err := tr.RecompileCS(r.CS, si.CS)
		if err != nil {
			return nil, err
		}
		mods = append(mods, module{"cs", data})
	}
	return mods, nil
}

func writeModules(dir, prefix string, mods []module) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("mkdir out: %w", err)
	}
	for _, m := range mods {
		path := filepath.Join(dir, prefix+m.Stage+".spv")
		if err := os.WriteFile(path, m.Data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", path, len(m.Data))
	}
	return nil
}

// disableKeys marks every "hash0:crc32" key in a comma-separated list.
func disableKeys(tr *translator.Translator, list string) error {
	if list == "" {
		return nil
	}
	for _, s := range strings.Split(list, ",") {
		k, err := debug.ParseKey(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		tr.Disable(k)
	}
	return nil
}

func cmdRecompile(args []string) error {
	fs := flag.NewFlagSet("recompile", flag.ExitOnError)
	mf := addMemFlags(fs)
	of := addOptFlags(fs)
	regs := fs.String("regs", "", "register snapshot JSON")
	outDir := fs.String("out", ".", "output directory for <stage>.spv")
	disable := fs.String("disable", "", "comma-separated hash0:crc32 keys to skip")
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
	if err := disableKeys(tr, *disable); err != nil {
		return err
	}

	mods, err := recompile(tr, r)
	if err != nil {
		return err
	}
	return writeModules(*outDir, "", mods)
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"gcnrecomp/internal/output"
	"gcnrecomp/internal/translator"
)

// manifest lists captures to recompile against one guest image. Regs
// paths are relative to the manifest file.
type manifest struct {
	Jobs []job `json:"jobs"`
}

type job struct {
	Name string `json:"name"`
	Regs string `json:"regs"`
}

type jobResult struct {
	Name    string   `json:"name"`
	Modules []string `json:"modules,omitempty"`
	Bytes   int      `json:"bytes,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	dir := filepath.Dir(path)
	seen := make(map[string]bool, len(m.Jobs))
	for i := range m.Jobs {
		j := &m.Jobs[i]
		if j.Name == "" || j.Regs == "" {
			return nil, fmt.Errorf("manifest job %d: name and regs are required", i)
		}
		if seen[j.Name] {
			return nil, fmt.Errorf("manifest job %d: duplicate name %q", i, j.Name)
		}
		seen[j.Name] = true
		if !filepath.IsAbs(j.Regs) {
			j.Regs = filepath.Join(dir, j.Regs)
		}
	}
	return &m, nil
}

// runBatch recompiles every job on at most jobs workers. Job failures are
// recorded in the results; with failFast the first one cancels the rest.
func runBatch(ctx context.Context, tr *translator.Translator, m *manifest, outDir string, jobs int, failFast bool) ([]jobResult, error) {
	results := make([]jobResult, len(m.Jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, j := range m.Jobs {
		g.Go(func() error {
			res := &results[i]
			res.Name = j.Name
			if err := ctx.Err(); err != nil {
				res.Error = err.Error()
				return nil
			}
			err := func() error {
				r, err := loadRegs(j.Regs)
				if err != nil {
					return err
				}
				mods, err := recompile(tr, r)
				if err != nil {
					return err
				}
				for _, mod := range mods {
					res.Modules = append(res.Modules, mod.Stage)
					res.Bytes += len(mod.Data)
				}
				return writeModules(outDir, j.Name+"_", mods)
			}()
			if err != nil {
				res.Error = err.Error()
				if failFast {
					return fmt.Errorf("%s: %w", j.Name, err)
				}
			}
			return nil
		})
	}
	err := g.Wait()
	sort.Slice(results, func(a, b int) bool { return results[a].Name < results[b].Name })
	return results, err
}

func cmdBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	mf := addMemFlags(fs)
	of := addOptFlags(fs)
	manifestPath := fs.String("manifest", "", "batch manifest JSON")
	outDir := fs.String("out", "out", "output directory")
	jobs := fs.Int("jobs", runtime.NumCPU(), "parallel workers")
	failFast := fs.Bool("fail-fast", false, "stop at the first failing job")
	disable := fs.String("disable", "", "comma-separated hash0:crc32 keys to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *manifestPath == "" {
		return fmt.Errorf("--manifest is required")
	}
	if *jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1")
	}
	m, err := loadManifest(*manifestPath)
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

	results, runErr := runBatch(context.Background(), tr, m, *outDir, *jobs, *failFast)

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %s\n", r.Name, r.Error)
		}
	}
	summary := filepath.Join(*outDir, "summary.json")
	if err := output.WriteJSON(summary, results); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%d jobs, %d failed, wrote %s\n", len(results), failed, summary)
	if runErr != nil {
		return runErr
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(results))
	}
	return nil
}

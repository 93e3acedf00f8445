// Package main generates markdown reference documentation from curatekit
// source: the CLI command tree, the validation rule registry and the
// configuration file layout.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=rules -outdir=docs/rules
//	go run ./scripts/gendocs -gen=config -outdir=docs
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, rules, config, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

// generator writes one documentation set into a directory.
type generator struct {
	name       string
	defaultDir string
	run        func(outDir string) error
}

var generators = []generator{
	{name: "cli", defaultDir: filepath.Join("docs", "cli"), run: generateCLIDocs},
	{name: "rules", defaultDir: filepath.Join("docs", "rules"), run: generateRulesDocs},
	{name: "config", defaultDir: "docs", run: generateConfigDocs},
}

func main() {
	flag.Parse()

	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	var matched bool
	for _, g := range generators {
		if *genFlag != "all" && *genFlag != g.name {
			continue
		}
		matched = true

		outDir := filepath.Join(projectRoot, g.defaultDir)
		if *outDirFlag != "" && *genFlag != "all" {
			outDir = *outDirFlag
		}
		if err := g.run(outDir); err != nil {
			log.Fatalf("failed to generate %s docs: %v", g.name, err)
		}
	}
	if !matched {
		log.Fatalf("unknown -gen value: %s (use: cli, rules, config, all)", *genFlag)
	}

	log.Println("Done!")
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// writeDoc creates outDir if needed and writes the page into it.
func writeDoc(outDir, name string, w *MarkdownWriter) error {
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, name), w.Bytes(), 0o600); err != nil {
		return err
	}
	log.Printf("  Generated %s", name)
	return nil
}

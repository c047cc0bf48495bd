//go:build mage

// Package main contains Mage build targets for pdbfetch developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories the fetch utility expects.
// The CLI never creates them itself.
var projectDirs = []string{
	outputDir,
}

const (
	outputDir    = "examples"
	manifestPath = "pdb-list.txt"
)

// Init creates the output directory structure for fetched structures.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "pdbfetch"
	cmdPkg  = "./cmd/pdbfetch"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check runs go vet and then the tests.
func Check() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	mg.Deps(Test)
	return nil
}

// Stats prints manifest and output-directory metrics: identifiers
// recorded, distinct identifiers, and the count and total size of the
// fetched structure files.
func Stats() error {
	ids, err := manifestIDs(manifestPath)
	if err != nil {
		return err
	}
	distinct := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}

	files, err := filepath.Glob(filepath.Join(outputDir, "*.cif"))
	if err != nil {
		return fmt.Errorf("listing %s: %w", outputDir, err)
	}
	var size int64
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", f, err)
		}
		size += info.Size()
	}

	fmt.Printf("Manifest entries (%s):   %d\n", manifestPath, len(ids))
	fmt.Printf("Distinct identifiers:         %d\n", len(distinct))
	fmt.Printf("Structure files (%s/*.cif): %d (%d bytes)\n", outputDir, len(files), size)
	return nil
}

// manifestIDs returns the non-blank lines of the manifest. A missing
// manifest has no entries.
func manifestIDs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		if id := strings.TrimSpace(line); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Fetch builds the CLI and downloads one structure by identifier,
// e.g. `mage fetch 1ABC`.
func Fetch(id string) error {
	mg.Deps(Init, Build)
	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "--verbose", id); err != nil {
		return fmt.Errorf("fetching %s: %w", id, err)
	}
	return nil
}

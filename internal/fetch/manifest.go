// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"os"
)

// AppendManifest appends a newline followed by id to the manifest at path,
// creating the file if needed. No trailing newline is written, and
// duplicates are not filtered.
func AppendManifest(path, id string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening manifest: %w", err)
	}
	_, writeErr := f.WriteString("\n" + id)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("appending to manifest: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing manifest: %w", closeErr)
	}
	return nil
}

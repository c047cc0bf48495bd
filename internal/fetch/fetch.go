// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads one structure file by identifier and records the
// identifier in an append-only manifest.
//
// Identifiers are not validated. They are substituted verbatim into the
// request URL and the output file name, so anything the HTTP client or the
// file system rejects surfaces as an error from Fetch.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/pdbfetch/internal/httputil"
	"github.com/pdiddy/pdbfetch/pkg/types"
)

// StructureURL returns the download URL for id.
func StructureURL(cfg types.FetchConfig, id string) string {
	return cfg.BaseURL + id + cfg.Suffix
}

// StructurePath returns the local path the body for id is written to.
// The path is not cleaned: "examples/../x.cif" reaches the OS as-is, so a
// missing output directory fails even when id climbs out of it.
func StructurePath(cfg types.FetchConfig, id string) string {
	return cfg.OutputDir + string(filepath.Separator) + id + cfg.Suffix
}

// Fetch downloads the structure for id, writes the response body verbatim
// to StructurePath, and appends id to the manifest.
//
// The body is written whatever the HTTP status; a non-2xx status only
// produces a warning on w. The output directory is never created. If the
// structure write fails the manifest is left untouched; if the manifest
// append fails the structure file is kept.
func Fetch(ctx context.Context, client *http.Client, id string, cfg types.FetchConfig, w io.Writer) (*types.Record, error) {
	url := StructureURL(cfg, id)
	path := StructurePath(cfg, id)

	fmt.Fprintf(w, "downloading: %s\n", url)

	resp, err := httputil.Get(ctx, client, url)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", id, err)
	}
	if !resp.OK() {
		fmt.Fprintf(w, "  warning: HTTP %d from %s, writing body anyway\n", resp.StatusCode, url)
	}

	if err := writeStructure(path, resp.Body); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(w, "wrote: %s (%d bytes)\n", path, len(resp.Body))

	if err := AppendManifest(cfg.ManifestPath, id); err != nil {
		return nil, fmt.Errorf("recording %s in %s: %w", id, cfg.ManifestPath, err)
	}
	fmt.Fprintf(w, "recorded: %s in %s\n", id, cfg.ManifestPath)

	return &types.Record{
		ID:         id,
		SourceURL:  url,
		Path:       path,
		StatusCode: resp.StatusCode,
		Bytes:      len(resp.Body),
	}, nil
}

// writeStructure creates or truncates path and writes data to it.
func writeStructure(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	_, writeErr := f.Write(data)
	closeErr := f.Close()
	if writeErr != nil {
		return writeErr
	}
	return closeErr
}

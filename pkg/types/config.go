// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration and result records shared between
// the CLI and the fetch stage.
package types

import "time"

// Defaults reproduce the fixed locations of the fetch-and-record utility.
const (
	DefaultBaseURL      = "http://files.rcsb.org/download/"
	DefaultSuffix       = ".cif"
	DefaultOutputDir    = "examples"
	DefaultManifestPath = "pdb-list.txt"
)

// HTTPConfig holds HTTP settings for the fetch stage.
type HTTPConfig struct {
	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// FetchConfig holds settings for fetching one structure file.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is prepended to the identifier to form the request URL.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Suffix is appended to the identifier in both the URL and the file name.
	Suffix string `json:"suffix" yaml:"suffix"`

	// OutputDir receives <identifier><Suffix>. It must already exist.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// ManifestPath is the append-only list of requested identifiers.
	ManifestPath string `json:"manifest_path" yaml:"manifest_path"`
}

// DefaultFetchConfig returns the configuration used when nothing is overridden.
func DefaultFetchConfig() FetchConfig {
	return FetchConfig{
		BaseURL:      DefaultBaseURL,
		Suffix:       DefaultSuffix,
		OutputDir:    DefaultOutputDir,
		ManifestPath: DefaultManifestPath,
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record describes the outcome of one fetch.
type Record struct {
	// ID is the identifier exactly as supplied on the command line.
	ID string `json:"id" yaml:"id"`

	// SourceURL is the URL that was requested.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// Path is the local file the response body was written to.
	Path string `json:"path" yaml:"path"`

	// StatusCode is the HTTP status of the response. It is recorded, not checked.
	StatusCode int `json:"status_code" yaml:"status_code"`

	// Bytes is the number of body bytes written to Path.
	Bytes int `json:"bytes" yaml:"bytes"`
}

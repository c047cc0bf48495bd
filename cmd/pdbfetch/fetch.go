// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdbfetch/internal/fetch"
	"github.com/pdiddy/pdbfetch/pkg/types"
)

// Config keys. Each is also readable from PDBFETCH_<KEY> in the environment.
const (
	keyBaseURL      = "base_url"
	keySuffix       = "suffix"
	keyOutputDir    = "output_dir"
	keyManifestPath = "manifest_path"
	keyTimeout      = "timeout"
)

func init() {
	defaults := types.DefaultFetchConfig()

	flags := rootCmd.PersistentFlags()
	flags.String("base-url", defaults.BaseURL, "URL prefix the identifier is appended to")
	flags.String("suffix", defaults.Suffix, "suffix appended to the identifier in the URL and file name")
	flags.String("output-dir", defaults.OutputDir, "existing directory that receives the structure file")
	flags.String("manifest", defaults.ManifestPath, "append-only list of requested identifiers")
	flags.Duration("timeout", defaults.Timeout, "HTTP request timeout (0 = none)")

	bindFetchFlags(flags)
}

// bindFetchFlags ties the fetch flags to their viper keys.
func bindFetchFlags(flags *pflag.FlagSet) {
	bindFlag(flags, keyBaseURL, "base-url")
	bindFlag(flags, keySuffix, "suffix")
	bindFlag(flags, keyOutputDir, "output-dir")
	bindFlag(flags, keyManifestPath, "manifest")
	bindFlag(flags, keyTimeout, "timeout")
}

func bindFlag(flags *pflag.FlagSet, key, name string) {
	if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(err)
	}
}

// loadFetchConfig resolves the fetch settings: flag, then environment,
// then config file, then the built-in defaults.
func loadFetchConfig() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout: viper.GetDuration(keyTimeout),
		},
		BaseURL:      viper.GetString(keyBaseURL),
		Suffix:       viper.GetString(keySuffix),
		OutputDir:    viper.GetString(keyOutputDir),
		ManifestPath: viper.GetString(keyManifestPath),
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadFetchConfig()

	var w io.Writer = io.Discard
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		w = cmd.OutOrStdout()
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	_, err := fetch.Fetch(cmd.Context(), client, args[0], cfg, w)
	return err
}

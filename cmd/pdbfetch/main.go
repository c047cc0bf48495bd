// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdbfetch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd downloads one structure file and records its identifier.
var rootCmd = &cobra.Command{
	Use:   "pdbfetch <identifier>",
	Short: "Download a CIF structure file from the RCSB PDB",
	Long: `pdbfetch downloads http://files.rcsb.org/download/<identifier>.cif,
writes the response body verbatim to examples/<identifier>.cif and appends
the identifier to pdb-list.txt.

The identifier is not validated and the HTTP status is not checked: whatever
the server returns is written. The examples/ directory must already exist.
A successful run prints nothing unless --verbose is set.

Use -- before an identifier that starts with "-" or that names a subcommand:

  pdbfetch -- -1AB
  pdbfetch -- version

Settings come from flags, then PDBFETCH_* environment variables, then the
config file, then the defaults above.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runFetch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdbfetch.yaml or ~/.config/pdbfetch/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print progress to stdout")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdbfetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdbfetch"))
		}
	}

	viper.SetEnvPrefix("PDBFETCH")
	viper.AutomaticEnv()

	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

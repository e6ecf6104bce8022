package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose  bool
	jsonOut  bool
	packages bool

	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "vdfctl",
	Short: "Inspect Steam appinfo.vdf and packageinfo.vdf files",
	Long: `vdfctl decodes the binary VDF metadata files Steam keeps per app
(appinfo.vdf) and per package (packageinfo.vdf). It can print file headers,
look up individual keys, dump records as JSON, and maintain a local record
cache for fast repeated lookups.

Inputs are treated as appinfo files unless --packages is given.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log = zap.Must(zap.NewDevelopment())
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVarP(&packages, "packages", "p", false, "Treat input as packageinfo.vdf")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

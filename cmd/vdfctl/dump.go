package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/steamkit/vdf/vdf"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file> [id]",
		Short: "Dump records as JSON",
		Long: `The dump command decodes a VDF metadata file and writes records as
JSON: one record's tree when an id is given, otherwise every record keyed
by id.

Example:
  vdfctl dump appinfo.vdf 570
  vdfctl dump --packages packageinfo.vdf`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	path := args[0]
	log.Debug("dumping records", zap.String("path", path))

	var out any
	if packages {
		info, err := vdf.OpenPackageInfo(path)
		if err != nil {
			return err
		}
		out = info.Packages
		if len(args) == 2 {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			pkg, ok := info.Packages[id]
			if !ok {
				return fmt.Errorf("no package with id %d", id)
			}
			out = pkg.KeyValues
		}
	} else {
		info, err := vdf.OpenAppInfo(path)
		if err != nil {
			return err
		}
		out = info.Apps
		if len(args) == 2 {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			app, ok := info.Apps[id]
			if !ok {
				return fmt.Errorf("no app with id %d", id)
			}
			out = app.KeyValues
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func parseID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid record id %q: %w", s, err)
	}
	return uint32(id), nil
}

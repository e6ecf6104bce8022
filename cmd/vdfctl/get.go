package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/steamkit/vdf/vdf"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show the value's type")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <id> <key>...",
		Short: "Look up one value in one record",
		Long: `The get command decodes a VDF metadata file, selects the record with
the given id, and descends the key path into its tree.

Example:
  vdfctl get appinfo.vdf 570 common name
  vdfctl get --packages packageinfo.vdf 39 billingtype`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], args[1], args[2:])
		},
	}
}

func runGet(path, idArg string, keys []string) error {
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	log.Debug("looking up key path",
		zap.String("path", path), zap.Uint32("id", id), zap.Strings("keys", keys))

	v, err := lookup(path, id, keys)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("not found: %v", keys)
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(v)
	}
	if getShowType {
		fmt.Printf("%s (%s)\n", v, v.Type)
		return nil
	}
	fmt.Println(v)
	return nil
}

func lookup(path string, id uint32, keys []string) (*vdf.Value, error) {
	if packages {
		info, err := vdf.OpenPackageInfo(path)
		if err != nil {
			return nil, err
		}
		pkg, ok := info.Packages[id]
		if !ok {
			return nil, fmt.Errorf("no package with id %d", id)
		}
		return pkg.Get(keys...), nil
	}
	info, err := vdf.OpenAppInfo(path)
	if err != nil {
		return nil, err
	}
	app, ok := info.Apps[id]
	if !ok {
		return nil, fmt.Errorf("no app with id %d", id)
	}
	return app.Get(keys...), nil
}

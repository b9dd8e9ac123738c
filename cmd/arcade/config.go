package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-physics/internal/config"
)

var flagConfigOut string

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print or write a game's default config",
	Long: `Print the embedded default YAML config of a game, or write it to a
file to start customizing it. Configs are looked up in this order:
--config, ~/.arcade/configs/<game>.yaml, ./configs/<game>.yaml, defaults.

Examples:
  arcade config airhockey
  arcade config bumpers --out ~/.arcade/configs/bumpers.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigOut, "out", "", "Write the config to this file instead of stdout")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		exitf("no config for game %q", args[0])
	}

	if flagConfigOut == "" {
		fmt.Print(string(data))
		return
	}

	path := flagConfigOut
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			exitf("cannot expand home directory: %v", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		exitf("cannot create directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		exitf("writing config: %v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}

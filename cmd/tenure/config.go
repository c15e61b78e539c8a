package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration after applying --config and --difficulty,
as YAML. With --check, only validate it.

Config search order:
  1. --config path (.yaml, .yml or .toml)
  2. ~/.tenure/configs/tenure.yaml
  3. ./configs/tenure.yaml
  4. Built-in defaults

Examples:
  tenure config > ~/.tenure/configs/tenure.yaml
  tenure config --difficulty hard
  tenure config --config ./my-tenure.toml --check`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate only")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagCheck {
		fmt.Println("Config OK")
		return
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}

// Command fastpgp reports how the bridge is built and checks that a
// configured engine answers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fastpgp",
	Short: "Inspect and exercise the fastpgp call bridge",
	Long: `fastpgp opens a bridge the same way an application would and reports
which strategy and backend answered.

Examples:
  # Print wrapper and engine versions
  fastpgp version

  # Open the bridge from a config file and run a key round trip
  fastpgp check --config fastpgp.yaml --roundtrip`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "bridge config file (YAML)")
	rootCmd.AddCommand(versionCmd, checkCmd)
}

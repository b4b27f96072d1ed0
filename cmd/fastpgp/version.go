package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print wrapper and engine versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fastpgp-go version: %s\n", fastpgp.WrapperVersion())
		fmt.Fprintf(out, "native engine:      %s\n", fastpgp.NativeEngineVersion())
		fmt.Fprintf(out, "native linked:      %t\n", fastpgp.NativeLinked())
	},
}

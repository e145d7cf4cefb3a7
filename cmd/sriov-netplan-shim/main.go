package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sriov-netplan-shim/pkg"
)

const progName = "sriov-netplan-shim"

var logLevel string

var rootCmd = &cobra.Command{
	Use:           progName,
	Short:         "Configure SR-IOV virtual functions from declarative interface configuration",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return pkg.SetLogLevelFromString(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		os.Exit(1)
	}
}

package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sriov-netplan-shim/internal/config"
	"sriov-netplan-shim/pkg"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure SR-IOV adapters with VF functions",
	Long: `Configure reads the desired virtual-function count per interface from
` + config.DefaultPath + ` and reconciles each matching
SR-IOV capable adapter to it. Interfaces without a matching device and
devices without SR-IOV capability are skipped with a warning.`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return err
	}
	if cfg == nil {
		log.Warn("no configuration file found, skipping configuration")
		return nil
	}
	return pkg.Configure(cfg.NumVFsByInterface())
}

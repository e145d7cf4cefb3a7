package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sriov-netplan-shim/pkg"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered PCI Ethernet devices",
	Long: `List discovers the host's PCI Ethernet devices and prints one line per
device: interface name, PCI address, MAC address, operational state and
VF counts for SR-IOV capable adapters. Driver, vendor and product names
are filled in on a best-effort basis.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	devices, err := pkg.NewPCINetDevices()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "INTERFACE\tPCI ADDRESS\tMAC\tSTATE\tVFS\tDRIVER\tDEVICE")
	for _, d := range pkg.DescribeDevices(devices) {
		vfs := "-"
		if d.Device.SRIOV != nil {
			vfs = fmt.Sprintf("%d/%d", d.Device.SRIOV.NumVFs, d.Device.SRIOV.TotalVFs)
		}
		device := d.Vendor
		if d.Product != "" {
			if device != "" {
				device += " "
			}
			device += d.Product
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.Device.InterfaceName, d.Device.PCIAddress, d.Device.MACAddress,
			d.Device.State, vfs, d.Driver, device)
	}
	return w.Flush()
}

package pkg

import (
	"github.com/jaypipes/ghw"
	"github.com/safchain/ethtool"
)

// DeviceDescription augments a device snapshot with display-only
// information from ethtool and the PCI database.
type DeviceDescription struct {
	Device  *PCINetDevice
	Driver  string
	Vendor  string
	Product string
}

// DescribeDevices decorates every device in the collection with its
// kernel driver, vendor and product names. Enrichment is best effort:
// a failure leaves the corresponding fields empty and never affects
// the devices themselves.
func DescribeDevices(devices *PCINetDevices) []DeviceDescription {
	var et *ethtool.Ethtool
	if e, err := ethtool.NewEthtool(); err == nil {
		et = e
		defer et.Close()
	}
	pciInfo, _ := ghw.PCI()

	descriptions := make([]DeviceDescription, 0, len(devices.Devices))
	for _, device := range devices.Devices {
		description := DeviceDescription{Device: device}
		if et != nil && device.InterfaceName != "" {
			if drvInfo, err := et.DriverInfo(device.InterfaceName); err == nil {
				description.Driver = drvInfo.Driver
			}
		}
		if pciInfo != nil {
			if pciDevice := pciInfo.GetDevice(device.PCIAddress); pciDevice != nil {
				if pciDevice.Vendor != nil {
					description.Vendor = pciDevice.Vendor.Name
				}
				if pciDevice.Product != nil {
					description.Product = pciDevice.Product.Name
				}
			}
		}
		descriptions = append(descriptions, description)
	}
	return descriptions
}

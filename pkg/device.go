package pkg

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// writeSriovNumVFs is defined as a variable so tests can intercept
// control-file writes.
var writeSriovNumVFs = func(pciAddress string, numVFs int) error {
	path := filepath.Join(sysBusPCIDevices, pciAddress, numVFsFile)
	if err := os.WriteFile(path, []byte(strconv.Itoa(numVFs)), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %d to %v", numVFs, path)
	}
	return nil
}

// PCINetDevice is one PCI Ethernet adapter. PCIAddress is fixed at
// construction; the remaining fields are a snapshot refreshed from the
// sysfs inventory scan. SRIOV is nil for devices without the
// capability.
type PCINetDevice struct {
	PCIAddress    string
	InterfaceName string
	MACAddress    string
	State         string
	SRIOV         *SRIOVCaps
}

// NewPCINetDevice returns a device for the given canonical PCI address
// with its attribute snapshot already populated.
func NewPCINetDevice(pciAddress string) (*PCINetDevice, error) {
	d := &PCINetDevice{PCIAddress: pciAddress}
	if err := d.Refresh(); err != nil {
		return nil, err
	}
	return d, nil
}

// Refresh re-runs the system-wide inventory scan and overwrites the
// device's mutable attributes from the record matching its address.
// When no record matches, the previous values are kept as-is: a device
// vanishing mid-run (driver unbind race) leaves a stale snapshot
// rather than an empty one.
func (d *PCINetDevice) Refresh() error {
	records, err := ScanNetDevices()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].PCIAddress == d.PCIAddress {
			d.InterfaceName = records[i].InterfaceName
			d.MACAddress = records[i].MACAddress
			d.State = records[i].State
			d.SRIOV = records[i].SRIOV
			break
		}
	}
	return nil
}

// SetNumVFs reconciles the device's configured VF count to numVFs and
// reports whether a change was made. Devices without SR-IOV capability
// and targets equal to the current count are no-ops. The kernel
// disallows a run-time change of sriov_numvfs between two non-zero
// values, so the count is always reset to 0 before the target value is
// written. A failed write is returned to the caller without retry.
func (d *PCINetDevice) SetNumVFs(numVFs int) (bool, error) {
	if d.SRIOV == nil || numVFs == d.SRIOV.NumVFs {
		return false, nil
	}
	if err := writeSriovNumVFs(d.PCIAddress, 0); err != nil {
		return false, err
	}
	if err := writeSriovNumVFs(d.PCIAddress, numVFs); err != nil {
		return false, err
	}
	if err := d.Refresh(); err != nil {
		return true, err
	}
	return true, nil
}

// PCINetDevices owns one PCINetDevice per PCI Ethernet address present
// at construction time. The set of devices is fixed; re-running
// discovery means constructing a new collection.
type PCINetDevices struct {
	Devices []*PCINetDevice
}

// NewPCINetDevices enumerates the host's Ethernet controllers and
// builds one device per address, in enumeration order.
func NewPCINetDevices() (*PCINetDevices, error) {
	pciAddresses, err := PCIEthernetAddresses()
	if err != nil {
		return nil, err
	}
	devices := make([]*PCINetDevice, 0, len(pciAddresses))
	for _, pciAddress := range pciAddresses {
		device, err := NewPCINetDevice(pciAddress)
		if err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}
	return &PCINetDevices{Devices: devices}, nil
}

// UpdateDevices refreshes the attribute snapshot of every owned device
// without re-enumerating addresses.
func (ds *PCINetDevices) UpdateDevices() error {
	for _, device := range ds.Devices {
		if err := device.Refresh(); err != nil {
			return err
		}
	}
	return nil
}

// GetMACs returns the MAC addresses of all devices that resolved an
// interface.
func (ds *PCINetDevices) GetMACs() []string {
	var macs []string
	for _, device := range ds.Devices {
		if device.MACAddress != "" {
			macs = append(macs, device.MACAddress)
		}
	}
	return macs
}

// GetDeviceFromMAC returns the first device with the given MAC
// address, or nil if there is none.
func (ds *PCINetDevices) GetDeviceFromMAC(mac string) *PCINetDevice {
	for _, device := range ds.Devices {
		if device.MACAddress == mac {
			return device
		}
	}
	return nil
}

// GetDeviceFromPCIAddress returns the first device with the given PCI
// address, or nil if there is none.
func (ds *PCINetDevices) GetDeviceFromPCIAddress(pciAddress string) *PCINetDevice {
	for _, device := range ds.Devices {
		if device.PCIAddress == pciAddress {
			return device
		}
	}
	return nil
}

// GetDeviceFromInterfaceName returns the first device with the given
// interface name, or nil if there is none.
func (ds *PCINetDevices) GetDeviceFromInterfaceName(interfaceName string) *PCINetDevice {
	for _, device := range ds.Devices {
		if device.InterfaceName == interfaceName {
			return device
		}
	}
	return nil
}

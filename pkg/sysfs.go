package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// sysBusPCIDevices is defined as a variable so tests can point the
// scan at a fixture tree.
var sysBusPCIDevices = "/sys/bus/pci/devices"

const (
	totalVFsFile = "sriov_totalvfs"
	numVFsFile   = "sriov_numvfs"
)

// Physical function naming scheme used by kernel drivers for
// phys_port_name, see
// https://github.com/libvirt/libvirt/commit/5b1c525b1f3608156884aed0dc5e925306c1e260
var pfPhysPortNameRegex = regexp.MustCompile(`(?i)^(p[0-9]+|p[0-9]+s[0-9]+)$`)

// SRIOVCaps holds the VF capacity attributes of an SR-IOV capable
// device. A nil *SRIOVCaps marks a device without the capability, so
// the counts only exist when they are meaningful.
type SRIOVCaps struct {
	TotalVFs int
	NumVFs   int
}

// NetDeviceRecord is one network device produced by a ScanNetDevices
// pass.
type NetDeviceRecord struct {
	InterfaceName string
	MACAddress    string
	PCIAddress    string
	State         string
	SRIOV         *SRIOVCaps
}

// ScanNetDevices walks the kernel's PCI device tree and returns a
// record for every network device it can resolve an interface name
// for. Both directly exposed netdevs and netdevs sitting behind a
// virtio child device are covered. Devices without a resolvable
// interface name are logged and skipped.
func ScanNetDevices() ([]NetDeviceRecord, error) {
	direct, err := filepath.Glob(filepath.Join(sysBusPCIDevices, "*", "net"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to glob PCI net devices")
	}
	virtio, err := filepath.Glob(filepath.Join(sysBusPCIDevices, "*", "virtio*", "net"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to glob virtio net devices")
	}

	var records []NetDeviceRecord
	for _, netDir := range append(direct, virtio...) {
		devDir, err := filepath.EvalSymlinks(filepath.Dir(netDir))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve device directory: %v", netDir)
		}
		// For virtio devices the netdev hangs off a virtio child
		// directory and the PCI address is one level up.
		pciAddress := filepath.Base(devDir)
		if strings.HasPrefix(pciAddress, "virtio") {
			pciAddress = filepath.Base(filepath.Dir(devDir))
		}

		ifname, err := physicalInterfaceName(netDir)
		if err != nil {
			return nil, err
		}
		if ifname == "" {
			log.WithField("pci_address", pciAddress).Warn(
				"unable to determine interface name for PCI device")
			continue
		}

		mac, err := readSysfsAttr(filepath.Join(netDir, ifname, "address"))
		if err != nil {
			return nil, err
		}
		state, err := readSysfsAttr(filepath.Join(netDir, ifname, "operstate"))
		if err != nil {
			return nil, err
		}

		record := NetDeviceRecord{
			InterfaceName: ifname,
			MACAddress:    mac,
			PCIAddress:    pciAddress,
			State:         state,
		}
		if _, err := os.Stat(filepath.Join(devDir, totalVFsFile)); err == nil {
			totalVFs, err := readSysfsInt(filepath.Join(devDir, totalVFsFile))
			if err != nil {
				return nil, err
			}
			numVFs, err := readSysfsInt(filepath.Join(devDir, numVFsFile))
			if err != nil {
				return nil, err
			}
			record.SRIOV = &SRIOVCaps{TotalVFs: totalVFs, NumVFs: numVFs}
		}
		records = append(records, record)
	}
	return records, nil
}

// physicalInterfaceName picks the netdev under netDir that represents
// the physical function. A single netdev needs no disambiguation. With
// multiple netdevs (representor or multi-port hardware) the one whose
// phys_port_name matches the PF naming scheme wins; candidates without
// a readable phys_port_name are skipped. Returns "" when no netdev
// qualifies.
func physicalInterfaceName(netDir string) (string, error) {
	entries, err := os.ReadDir(netDir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read net directory: %v", netDir)
	}
	if len(entries) == 1 {
		return entries[0].Name(), nil
	}

	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(netDir, entry.Name(), "phys_port_name"))
		if err != nil {
			continue
		}
		if pfPhysPortNameRegex.MatchString(strings.TrimSpace(string(data))) {
			return entry.Name(), nil
		}
	}
	return "", nil
}

func readSysfsAttr(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read sysfs attribute: %v", path)
	}
	return strings.TrimSpace(string(data)), nil
}

func readSysfsInt(path string) (int, error) {
	value, err := readSysfsAttr(path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "non-numeric sysfs attribute %v: %v", path, value)
	}
	return n, nil
}

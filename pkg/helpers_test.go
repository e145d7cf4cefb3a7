package pkg

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// setSysBusPCIDevices points the sysfs scan at a fixture tree for the
// duration of the test.
func setSysBusPCIDevices(t *testing.T, dir string) {
	t.Helper()
	orig := sysBusPCIDevices
	sysBusPCIDevices = dir
	t.Cleanup(func() { sysBusPCIDevices = orig })
}

// setLspciOutput substitutes canned lspci output for the duration of
// the test.
func setLspciOutput(t *testing.T, output string, err error) {
	t.Helper()
	orig := lspciOutput
	lspciOutput = func() ([]byte, error) { return []byte(output), err }
	t.Cleanup(func() { lspciOutput = orig })
}

// recordNumVFsWrites records every sriov_numvfs control-file write
// while still writing through to the fixture tree.
func recordNumVFsWrites(t *testing.T) *[]int {
	t.Helper()
	orig := writeSriovNumVFs
	writes := &[]int{}
	writeSriovNumVFs = func(pciAddress string, numVFs int) error {
		*writes = append(*writes, numVFs)
		return orig(pciAddress, numVFs)
	}
	t.Cleanup(func() { writeSriovNumVFs = orig })
	return writes
}

func writeSysfsFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content+"\n"), 0o644))
}

// addNetDevice builds a PCI network device under root with a single
// netdev.
func addNetDevice(t *testing.T, root, pciAddress, ifname, mac, state string) {
	t.Helper()
	netDir := filepath.Join(root, pciAddress, "net", ifname)
	writeSysfsFile(t, filepath.Join(netDir, "address"), mac)
	writeSysfsFile(t, filepath.Join(netDir, "operstate"), state)
}

// addSriovAttrs marks the device under root as SR-IOV capable.
func addSriovAttrs(t *testing.T, root, pciAddress string, totalVFs, numVFs int) {
	t.Helper()
	devDir := filepath.Join(root, pciAddress)
	writeSysfsFile(t, filepath.Join(devDir, totalVFsFile), strconv.Itoa(totalVFs))
	writeSysfsFile(t, filepath.Join(devDir, numVFsFile), strconv.Itoa(numVFs))
}

// lspciLine renders one lspci -m -D output line for an Ethernet
// controller.
func lspciLine(pciAddress string) string {
	return pciAddress + ` "Ethernet controller" "Intel Corporation" "I350 Gigabit Network Connection" -r01 "Intel Corporation" "Ethernet Server Adapter I350-T2"`
}

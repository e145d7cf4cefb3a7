package pkg

import (
	"os/exec"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"
)

const ethernetControllerClass = "Ethernet controller"

// lspciOutput is defined as a variable so it can be overridden in
// tests.
var lspciOutput = func() ([]byte, error) {
	return exec.Command("lspci", "-m", "-D").Output()
}

// PCIEthernetAddresses returns the canonical PCI addresses of all
// Ethernet controllers on the host, in the order lspci reports them.
func PCIEthernetAddresses() ([]string, error) {
	out, err := lspciOutput()
	if err != nil {
		return nil, errors.Wrap(err, "failed to run lspci")
	}

	var pciAddresses []string
	for _, line := range strings.Split(string(out), "\n") {
		columns, err := shlex.Split(line)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to tokenize lspci output line: %v", line)
		}
		if len(columns) < 2 || columns[1] != ethernetControllerClass {
			continue
		}
		pciAddress, err := FormatPCIAddress(columns[0])
		if err != nil {
			return nil, err
		}
		pciAddresses = append(pciAddresses, pciAddress)
	}
	return pciAddresses, nil
}

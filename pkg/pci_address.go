package pkg

import (
	"strings"

	"github.com/pkg/errors"
)

// FormatPCIAddress normalizes a PCI address to the canonical
// domain:bus:slot.function form used as a device key, zero filling the
// domain to 4 digits and the bus and slot to 2. The function part is
// kept as-is.
func FormatPCIAddress(pciAddr string) (string, error) {
	parts := strings.Split(pciAddr, ":")
	if len(parts) != 3 {
		return "", errors.Errorf("invalid PCI address format: %v", pciAddr)
	}
	slotFunc := strings.Split(parts[2], ".")
	if len(slotFunc) != 2 {
		return "", errors.Errorf("invalid PCI address format: %v", pciAddr)
	}
	return zfill(parts[0], 4) + ":" + zfill(parts[1], 2) + ":" +
		zfill(slotFunc[0], 2) + "." + slotFunc[1], nil
}

func zfill(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

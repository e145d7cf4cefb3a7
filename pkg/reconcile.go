package pkg

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Configure reconciles the desired per-interface VF counts against the
// host's adapters. Interfaces that cannot be matched to a device, or
// whose device is not SR-IOV capable, are skipped with a warning.
// Desired counts above the device's capacity are clamped to
// sriov_totalvfs. Only a failed control-file write aborts the run.
func Configure(interfaces map[string]int) error {
	for interfaceName, numVFs := range interfaces {
		devices, err := NewPCINetDevices()
		if err != nil {
			return err
		}
		device := devices.GetDeviceFromInterfaceName(interfaceName)
		if device == nil {
			log.WithField("interface", interfaceName).Warn(
				"no PCI device found for interface, skipping")
			continue
		}
		if device.SRIOV == nil {
			log.WithField("interface", interfaceName).Warn(
				"interface is not SR-IOV capable, skipping")
			continue
		}

		if numVFs > device.SRIOV.TotalVFs {
			log.WithFields(log.Fields{
				"interface": interfaceName,
				"requested": numVFs,
				"totalvfs":  device.SRIOV.TotalVFs,
			}).Warn("requested value for sriov_numvfs too high, falling back to interface totalvfs value")
			numVFs = device.SRIOV.TotalVFs
		}

		log.WithFields(log.Fields{
			"interface": interfaceName,
			"num_vfs":   numVFs,
		}).Info("configuring SR-IOV device")
		if _, err := device.SetNumVFs(numVFs); err != nil {
			return errors.Wrapf(err, "failed to configure %d VFs on interface %v",
				numVFs, interfaceName)
		}
	}
	return nil
}

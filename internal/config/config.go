package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the fixed location of the interfaces configuration.
const DefaultPath = "/etc/sriov-netplan-shim/interfaces.yaml"

// Interface holds the desired SR-IOV settings for one physical
// interface.
type Interface struct {
	NumVFs int `yaml:"num_vfs"`
}

// Config is the declarative interface configuration.
type Config struct {
	Interfaces map[string]Interface `yaml:"interfaces"`
}

// Load reads the configuration from path. A missing file is not an
// error: it returns a nil Config, meaning there is nothing to
// configure.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read config file: %v", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file: %v", path)
	}
	return &cfg, nil
}

// NumVFsByInterface flattens the configuration into a map from
// interface name to desired VF count.
func (c *Config) NumVFsByInterface() map[string]int {
	numVFs := make(map[string]int, len(c.Interfaces))
	for name, iface := range c.Interfaces {
		numVFs[name] = iface.NumVFs
	}
	return numVFs
}

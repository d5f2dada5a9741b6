package core

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Capability is the durable form of a local directory root.
// It survives restarts but says nothing about whether access is still granted;
// permission is re-checked every time it is restored.
type Capability struct {
	Backend   Backend   `yaml:"backend"`
	Name      string    `yaml:"name"`
	Path      string    `yaml:"path"`
	GrantedAt time.Time `yaml:"granted_at"`
}

// MarshalBinary encodes the capability for a CapabilityStore.
func (c Capability) MarshalBinary() ([]byte, error) {
	if c.Path == "" {
		return nil, fmt.Errorf("capability has no path")
	}
	return yaml.Marshal(c)
}

// UnmarshalBinary decodes a capability previously produced by MarshalBinary.
func (c *Capability) UnmarshalBinary(data []byte) error {
	var decoded Capability
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("failed to decode capability: %w", err)
	}
	if decoded.Path == "" {
		return fmt.Errorf("failed to decode capability: missing path")
	}
	if decoded.Backend == "" {
		decoded.Backend = BackendLocal
	}
	*c = decoded
	return nil
}

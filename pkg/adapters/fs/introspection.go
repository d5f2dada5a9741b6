package fs

import (
	"github.com/aretw0/introspection"
)

// RootState exposes internal state for observability.
type RootState struct {
	Kind     string `json:"kind"`
	Name     string `json:"name,omitempty"`
	HostPath string `json:"host_path,omitempty"`
	InMemory bool   `json:"in_memory"`
}

// State implements introspection.Introspectable.
func (r *Root) State() any {
	return RootState{
		Kind:     r.kind,
		Name:     r.name,
		HostPath: r.host,
		InMemory: r.host == "",
	}
}

// ComponentType implements introspection.Component.
func (r *Root) ComponentType() string {
	return r.kind
}

// LocalState exposes the provider's trust table.
type LocalState struct {
	Available bool     `json:"available"`
	AutoGrant bool     `json:"auto_grant"`
	Trusted   []string `json:"trusted,omitempty"`
}

// State implements introspection.Introspectable.
func (p *LocalProvider) State() any {
	p.mu.RLock()
	defer p.mu.RUnlock()

	trusted := make([]string, 0, len(p.trusted))
	for path := range p.trusted {
		trusted = append(trusted, path)
	}
	return LocalState{
		Available: p.Available(),
		AutoGrant: p.config.AutoGrant,
		Trusted:   trusted,
	}
}

// ComponentType implements introspection.Component.
func (p *LocalProvider) ComponentType() string {
	return "local-provider"
}

var _ introspection.Introspectable = (*Root)(nil)
var _ introspection.Component = (*Root)(nil)
var _ introspection.Introspectable = (*LocalProvider)(nil)
var _ introspection.Component = (*LocalProvider)(nil)

package core

import (
	"github.com/aretw0/introspection"
)

// SessionState exposes internal state for observability.
type SessionState struct {
	Backend         Backend      `json:"backend"`
	DirectoryName   string       `json:"directory_name,omitempty"`
	CapabilityKey   string       `json:"capability_key"`
	Capabilities    Capabilities `json:"capabilities"`
	ReadConcurrency int          `json:"read_concurrency"`
	RootType        string       `json:"root_type,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rootType := ""
	if s.root != nil {
		rootType = "directory"
		if comp, ok := s.root.(introspection.Component); ok {
			rootType = comp.ComponentType()
		}
	}

	return SessionState{
		Backend:         s.backend,
		DirectoryName:   s.name,
		CapabilityKey:   s.config.CapabilityKey,
		Capabilities:    s.DetectCapabilities(),
		ReadConcurrency: s.config.ReadConcurrency,
		RootType:        rootType,
	}
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)

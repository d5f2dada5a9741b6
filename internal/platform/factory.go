package platform

import (
	"context"
	"io"

	"github.com/aretw0/notestore/pkg/core"
)

// Instance is a session together with the resources it owns.
// Close releases them; the session must not be used afterwards.
type Instance struct {
	*core.Session
	closer io.Closer
}

// Close releases the capability store if this package opened it.
func (i *Instance) Close() error {
	if i.closer == nil {
		return nil
	}
	return i.closer.Close()
}

// New builds a session with no active backend.
//
//	inst, err := notestore.New(ctx, notestore.WithPicker(prompt.Terminal{}))
//	defer inst.Close()
//	name, ok, err := inst.Reconnect(ctx)
func New(ctx context.Context, opts ...Option) (*Instance, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	o.logger = orDiscard(o.logger)

	forceTemp := o.devSafety && IsDevRun()

	store, closer, err := openStore(ctx, o, forceTemp)
	if err != nil {
		return nil, err
	}

	session, err := core.NewSession(core.Config{
		Local:           initLocal(o),
		Sandbox:         initSandbox(o, forceTemp),
		Store:           store,
		CapabilityKey:   o.capabilityKey,
		ReadConcurrency: o.readConcurrency,
		Logger:          o.logger,
	})
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}

	return &Instance{Session: session, closer: closer}, nil
}

package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/notestore/pkg/adapters/badger"
	"github.com/aretw0/notestore/pkg/adapters/fs"
	"github.com/aretw0/notestore/pkg/adapters/memory"
	"github.com/aretw0/notestore/pkg/core"
)

// openStore returns the capability store and, when this package owns it,
// the closer that releases it.
func openStore(ctx context.Context, o *options, forceTemp bool) (core.CapabilityStore, io.Closer, error) {
	if o.store != nil {
		return o.store, nil, nil
	}

	switch o.capabilityStore {
	case "", "memory":
		return memory.NewStore(), nil, nil
	case "badger":
		dir := ResolveDataPath(o.capabilityDir, forceTemp)
		store, err := badger.Open(ctx, badger.Config{Dir: dir, Logger: o.logger})
		if err != nil {
			return nil, nil, err
		}
		o.logger.Debug("capability store opened", "kind", "badger", "dir", dir)
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown capability store: %s", o.capabilityStore)
	}
}

// initLocal builds the local directory provider. It is nil (unavailable)
// when no picker is configured.
func initLocal(o *options) core.LocalProvider {
	if o.picker == nil {
		return nil
	}
	return fs.NewLocalProvider(fs.LocalConfig{
		Picker:    o.picker,
		Prompter:  o.prompter,
		AutoGrant: o.autoGrant,
		Logger:    o.logger,
	})
}

func initSandbox(o *options, forceTemp bool) *fs.SandboxProvider {
	dir := ResolveDataPath(o.sandboxDir, forceTemp)
	if forceTemp && dir != o.sandboxDir {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", o.sandboxDir, "resolved_path", dir)
	}
	return fs.NewSandboxProvider(fs.SandboxConfig{
		Dir:      dir,
		InMemory: o.sandboxInMemory,
		Logger:   o.logger,
	})
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

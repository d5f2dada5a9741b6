package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/notestore"
	"github.com/aretw0/notestore/internal/prompt"
	"github.com/aretw0/notestore/pkg/core"
)

const (
	backendAuto    = "auto"
	backendLocal   = "local"
	backendSandbox = "sandbox"
)

// openStore builds a store from the loaded config. picker overrides the
// interactive terminal picker.
func openStore(ctx context.Context, picker core.Picker) (*notestore.Store, error) {
	terminal := prompt.Terminal{Default: defaultPickDir()}
	if picker == nil {
		picker = terminal
	}
	return notestore.New(ctx,
		notestore.WithConfig(cfg),
		notestore.WithLogger(slog.Default()),
		notestore.WithPicker(picker),
		notestore.WithPrompter(terminal),
	)
}

// connect opens a store and activates the backend selected by --backend.
// auto reconnects to the persisted directory and falls back to the sandbox.
func connect(ctx context.Context) (*notestore.Store, error) {
	store, err := openStore(ctx, nil)
	if err != nil {
		return nil, err
	}

	switch backend {
	case backendSandbox:
		_, err = store.UseSandboxedOrigin(ctx)
	case backendLocal, backendAuto:
		var ok bool
		_, ok, err = store.Reconnect(ctx)
		if err == nil && !ok {
			if backend == backendLocal {
				err = fmt.Errorf("%w: run `notestore pick` first", core.ErrNoActiveBackend)
				break
			}
			slog.Debug("no local directory, using sandbox")
			_, err = store.UseSandboxedOrigin(ctx)
		}
	default:
		err = fmt.Errorf("unknown backend %q", backend)
	}

	if err != nil {
		store.Close()
		return nil, err
	}
	slog.Debug("connected", "backend", store.ActiveBackend())
	return store, nil
}

// defaultPickDir suggests the nearest notes root, or the working directory.
func defaultPickDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	if root, err := notestore.FindRoot(wd); err == nil {
		return root
	}
	return wd
}

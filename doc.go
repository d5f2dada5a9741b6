// Package notestore is the Composition Root for notestore.
//
// It wires the session (pkg/core) to its storage adapters (pkg/adapters)
// using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// notestore gives a notes application one path-addressed filesystem over two
// backends: a host directory the user picked (remembered across restarts,
// with permission confirmed again on reconnect) and a private sandbox that
// needs no grant. Callers use "notes/a/b.md" style paths and never see which
// backend is active.
//
// Features:
//
//   - **Persistent Grant**: the picked directory is stored as a capability (BadgerDB) and restored by Reconnect.
//   - **Sandbox Fallback**: an app-private directory, or memory, when no directory was picked.
//   - **Atomic Writes**: content is written to a temp file and renamed into place.
//   - **Bulk Reads**: GetAllNotes and GetAllTemplates read files concurrently, all or nothing.
//   - **Watch**: fsnotify-backed change events for host-backed roots.
//
// Usage:
//
//	store, err := notestore.New(ctx,
//		notestore.WithPicker(prompt.Terminal{}),
//		notestore.WithBadgerStore(dir),
//	)
//	defer store.Close()
//
//	if _, ok, _ := store.Reconnect(ctx); !ok {
//		store.UseSandboxedOrigin(ctx)
//	}
//	err = store.WriteFile(ctx, "notes/today.md", "# Today")
package notestore

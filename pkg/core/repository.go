package core

import "context"

// EntryKind tells files and directories apart in a directory listing.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

// Entry is a direct child of a Directory.
type Entry struct {
	Name string
	Kind EntryKind
}

// Directory is a handle on a directory of whichever backend is active.
// Both backends implement it; everything above the providers depends only
// on this interface.
type Directory interface {
	// Name returns the last element of the directory path ("" for a root
	// without a display name).
	Name() string

	// Directory opens the child directory called name, creating it when
	// create is true. Returns ErrNotFound or ErrTypeMismatch.
	Directory(ctx context.Context, name string, create bool) (Directory, error)

	// File opens the child file called name, creating an empty file when
	// create is true. Returns ErrNotFound or ErrTypeMismatch.
	File(ctx context.Context, name string, create bool) (File, error)

	// Remove deletes the child entry called name.
	Remove(ctx context.Context, name string) error

	// Entries lists the direct children in the order the backend yields them.
	Entries(ctx context.Context) ([]Entry, error)
}

// File is a handle on a single file.
type File interface {
	Name() string

	// Read returns the full text content.
	Read(ctx context.Context) (string, error)

	// Write replaces the content. A successful return never leaves a
	// partially written file visible.
	Write(ctx context.Context, content string) error
}

// Watchable is implemented by roots backed by a host directory.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// CapabilityStore is a durable key-value store for encoded capabilities.
type CapabilityStore interface {
	// Get returns the value stored under key. ok is false when nothing is stored.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// PermissionState is the answer of a permission query or request.
type PermissionState string

const (
	PermissionGranted PermissionState = "granted"
	PermissionPrompt  PermissionState = "prompt"
	PermissionDenied  PermissionState = "denied"
)

// LocalProvider gives access to user-granted host directories.
type LocalProvider interface {
	// Available reports whether directories can be picked at all.
	Available() bool

	// Pick asks the user for a writable directory and returns its root
	// together with the capability that restores it later.
	Pick(ctx context.Context) (Directory, Capability, error)

	// Restore rebuilds a root from a capability. It does not check permission.
	Restore(ctx context.Context, c Capability) (Directory, error)

	// QueryPermission reports the current read-write permission without
	// prompting.
	QueryPermission(ctx context.Context, c Capability) (PermissionState, error)

	// RequestPermission asks for read-write permission and may block on the
	// user.
	RequestPermission(ctx context.Context, c Capability) (PermissionState, error)
}

// SandboxProvider gives access to application-private storage.
type SandboxProvider interface {
	Available() bool
	Root(ctx context.Context) (Directory, error)
}

// Picker chooses a host directory.
type Picker interface {
	PickDirectory(ctx context.Context) (string, error)
}

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

package core

// Backend identifies which storage backend a session is using.
type Backend string

const (
	BackendNone    Backend = "none"
	BackendLocal   Backend = "local"
	BackendSandbox Backend = "sandbox"
)

func (b Backend) String() string {
	if b == "" {
		return string(BackendNone)
	}
	return string(b)
}

// Reserved top-level directories.
const (
	NotesDir     = "notes"
	TemplatesDir = "templates"
)

// TempFilePrefix marks in-flight atomic writes. Backends hide entries
// carrying it, so paths may not use it.
const TempFilePrefix = ".notestore-tmp-"

// TemplateExt is the suffix a file needs to be picked up as a template.
const TemplateExt = ".md"

// SandboxName is the display name of the sandboxed backend.
const SandboxName = "Origin Private File System"

// DefaultCapabilityKey is the store key the local directory capability lives under.
const DefaultCapabilityKey = "root_dir"

// Capabilities reports which backends can be activated.
type Capabilities struct {
	LocalDirectoryAvailable  bool `json:"local_directory_available"`
	SandboxedOriginAvailable bool `json:"sandboxed_origin_available"`
}

// DirectoryEntry is one element of a recursive listing.
type DirectoryEntry struct {
	Path   string `json:"path"`
	IsFile bool   `json:"isFile"`
}

// NoteMap maps a path relative to notes/ to the file content.
type NoteMap map[string]string

// TemplateMap maps a template id (file name without .md) to its content.
type TemplateMap map[string]string

// EventType represents the type of change under the root.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change under the active root.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}

package settings

import (
	"path/filepath"
	"strings"
)

// FileRef is an opaque serialized reference to a file location, used for
// the startup database and for key files. Identity is the full value:
// two refs are the same file exactly when all fields match.
type FileRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func refsEqual(a, b *FileRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// DatabaseID derives the stable association identifier for a database
// from its file name. The ID, not the full path, is what the key-file
// association table is keyed by, so a database keeps its key file when
// moved between folders.
func DatabaseID(path string) string {
	return strings.ToLower(filepath.Base(path))
}

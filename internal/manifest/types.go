package manifest

// FileEntry describes a single file discovered during a scan. Type is the
// category directory the file was found under, Path is relative to the
// repository root using backslash separators, and Description comes from
// the file's frontmatter (empty when absent).
type FileEntry struct {
	Type        string `json:"type" yaml:"type"`
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description" yaml:"description"`
}

// Stack is the manifest document: an ordered list of file entries.
type Stack struct {
	Files []FileEntry `json:"files" yaml:"files"`
}

// Paths returns the entry paths in manifest order.
func (s *Stack) Paths() []string {
	paths := make([]string, 0, len(s.Files))
	for _, f := range s.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

package manifest

// ExtractPaths resolves an arbitrary decoded stack document into a flat
// list of path strings, in document order:
//
//   - a string is itself one path
//   - a mapping with a "files" key recurses into that key's value
//   - otherwise a mapping with a string "path" key yields that path
//   - a sequence concatenates the paths of its elements
//   - any other shape yields nothing
//
// This accepts both {"files":[{"path":...}]} manifests and bare path
// lists or strings uniformly.
func ExtractPaths(data any) []string {
	switch v := data.(type) {
	case string:
		return []string{v}
	case map[string]any:
		if files, ok := v["files"]; ok {
			return ExtractPaths(files)
		}
		if path, ok := v["path"].(string); ok {
			return []string{path}
		}
		return nil
	case []any:
		var paths []string
		for _, item := range v {
			paths = append(paths, ExtractPaths(item)...)
		}
		return paths
	default:
		return nil
	}
}

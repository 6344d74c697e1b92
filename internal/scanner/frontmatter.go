package scanner

import (
	"os"
	"strings"

	"github.com/adrg/frontmatter"
)

type frontMatter struct {
	Description string `yaml:"description"`
}

// extractDescription reads the description field from a file's YAML
// frontmatter. Unreadable files, files without frontmatter, malformed
// frontmatter, and frontmatter without a description key all yield an
// empty string; a failed read never fails the scan.
func extractDescription(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var fm frontMatter
	if _, err := frontmatter.Parse(f, &fm); err != nil {
		return ""
	}

	return strings.TrimSpace(fm.Description)
}

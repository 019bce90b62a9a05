// Package importer loads bookmark URLs from a YAML file for bulk
// ingestion. The file shape:
//
//	bookmarks:
//	  - https://example.com
//	  - https://go.dev
package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileSchema struct {
	Bookmarks []string `yaml:"bookmarks"`
}

// Load reads and parses a bookmark file, returning the URLs in file
// order. Blank entries are dropped; everything else is left for the
// ingestion pipeline to validate.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmarks file: %w", err)
	}

	var f fileSchema
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks yaml: %w", err)
	}

	urls := make([]string, 0, len(f.Bookmarks))
	for _, u := range f.Bookmarks {
		if u == "" {
			continue
		}
		urls = append(urls, u)
	}

	if len(urls) == 0 {
		return nil, fmt.Errorf("no bookmarks found in %s", path)
	}

	return urls, nil
}

package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/morozRed/codetool/internal/catalog"
	"github.com/morozRed/codetool/internal/fileutil"
)

type BatchResult struct {
	Dir       string   `json:"dir"`
	Files     []string `json:"files"`
	Rewritten int      `json:"rewritten"`
}

// BatchFileName names the file holding the template for lang and kind.
func BatchFileName(lang, kind string) string {
	return fmt.Sprintf("%s_%s.txt", lang, kind)
}

// Batch writes one file per supported (language, kind) pair into dir.
// Existing files are overwritten without prompting.
func (g *Generator) Batch(dir string) (BatchResult, error) {
	if dir == "" {
		dir = DefaultOutputDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return BatchResult{}, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	result := BatchResult{Dir: dir, Files: make([]string, 0)}
	for _, lang := range g.catalog.Languages() {
		for _, kind := range catalog.StandardTopics {
			path := filepath.Join(dir, BatchFileName(lang, kind))
			wrote, err := fileutil.WriteIfChangedTracked(path, []byte(g.Generate(lang, kind)))
			if err != nil {
				return result, fmt.Errorf("failed to write %s: %w", path, err)
			}
			if wrote {
				result.Rewritten++
			}
			result.Files = append(result.Files, path)
		}
	}
	return result, nil
}

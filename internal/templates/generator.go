package templates

import (
	"fmt"

	"github.com/morozRed/codetool/internal/catalog"
	"github.com/morozRed/codetool/internal/fileutil"
)

// NotAvailable is returned for template kinds outside catalog.StandardTopics.
const NotAvailable = "# Template not available."

// DefaultOutputDir is where Batch writes when no directory is configured.
const DefaultOutputDir = "examples"

// Generator produces starter templates from the snippet catalog.
type Generator struct {
	catalog *catalog.Catalog
}

func NewGenerator(c *catalog.Catalog) *Generator {
	return &Generator{catalog: c}
}

// Generate returns the starter template for lang and kind.
func (g *Generator) Generate(lang, kind string) string {
	switch kind {
	case catalog.TopicHello, catalog.TopicFunction, catalog.TopicClass:
		return g.catalog.Snippet(lang, kind)
	default:
		return NotAvailable
	}
}

// Save writes the snippet for (lang, topic) to path, replacing any existing file.
func (g *Generator) Save(lang, topic, path string) error {
	if err := fileutil.WriteFileAll(path, []byte(g.catalog.Snippet(lang, topic))); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

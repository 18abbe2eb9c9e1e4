package catalog

import (
	"sort"

	"github.com/samber/lo"
)

// Lookup misses are reported in-band so a typo never aborts the CLI.
const (
	NotFoundSnippet = "# No snippet found for this topic/language."
	NotFoundDoc     = "# No documentation link found."
	NotFoundTip     = "No advice available."
)

const (
	TopicHello    = "hello"
	TopicFunction = "function"
	TopicClass    = "class"
)

// StandardTopics lists the topics every built-in language provides, in display order.
var StandardTopics = []string{TopicHello, TopicFunction, TopicClass}

// Language holds the static content registered for one language.
type Language struct {
	Name     string
	DocURL   string
	Tip      string
	Snippets map[string]string
}

// Catalog is a read-only view over the registered languages. It is built once
// by New and never mutated afterwards.
type Catalog struct {
	order     []string
	languages map[string]Language
}

// Option customizes catalog construction.
type Option func(*Catalog)

// WithCustomSnippets merges user-supplied snippets keyed by language then topic.
// Entries for unsupported languages and empty texts are skipped.
func WithCustomSnippets(custom map[string]map[string]string) Option {
	return func(c *Catalog) {
		for lang, topics := range custom {
			entry, ok := c.languages[lang]
			if !ok {
				continue
			}
			for topic, text := range topics {
				if text == "" {
					continue
				}
				entry.Snippets[topic] = text
			}
		}
	}
}

// New creates a catalog with all built-in languages registered.
func New(opts ...Option) *Catalog {
	c := &Catalog{languages: make(map[string]Language)}
	for _, lang := range builtinLanguages() {
		c.register(lang)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Catalog) register(lang Language) {
	snippets := make(map[string]string, len(lang.Snippets))
	for topic, text := range lang.Snippets {
		snippets[topic] = text
	}
	lang.Snippets = snippets
	if _, exists := c.languages[lang.Name]; !exists {
		c.order = append(c.order, lang.Name)
	}
	c.languages[lang.Name] = lang
}

// Languages returns the supported language identifiers in stable order.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// IsSupported reports whether lang is a registered language.
func (c *Catalog) IsSupported(lang string) bool {
	return lo.Contains(c.order, lang)
}

// Snippet returns the code for (lang, topic) or NotFoundSnippet.
func (c *Catalog) Snippet(lang, topic string) string {
	entry, ok := c.languages[lang]
	if !ok {
		return NotFoundSnippet
	}
	text, ok := entry.Snippets[topic]
	if !ok || text == "" {
		return NotFoundSnippet
	}
	return text
}

// DocLink returns the documentation URL for lang or NotFoundDoc.
func (c *Catalog) DocLink(lang string) string {
	entry, ok := c.languages[lang]
	if !ok || entry.DocURL == "" {
		return NotFoundDoc
	}
	return entry.DocURL
}

// Tip returns a one-line style recommendation for lang or NotFoundTip.
func (c *Catalog) Tip(lang string) string {
	entry, ok := c.languages[lang]
	if !ok || entry.Tip == "" {
		return NotFoundTip
	}
	return entry.Tip
}

// Topics returns the topics available for lang: standard topics first, then
// custom ones sorted by name.
func (c *Catalog) Topics(lang string) []string {
	entry, ok := c.languages[lang]
	if !ok {
		return nil
	}
	topics := lo.Filter(StandardTopics, func(topic string, _ int) bool {
		_, ok := entry.Snippets[topic]
		return ok
	})
	extra := lo.Without(lo.Keys(entry.Snippets), StandardTopics...)
	sort.Strings(extra)
	return append(topics, extra...)
}

package catalog

import (
	"strings"
)

// Match is one snippet line containing a search keyword.
type Match struct {
	Language string `json:"language"`
	Topic    string `json:"topic"`
	Line     int    `json:"line"`
	Text     string `json:"text"`
}

// Search finds snippet lines containing keyword, case-insensitively. An empty
// lang searches every language. Results follow language order, then topic
// order, then line number.
func (c *Catalog) Search(keyword, lang string) []Match {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil
	}

	languages := c.order
	if lang != "" {
		if !c.IsSupported(lang) {
			return nil
		}
		languages = []string{lang}
	}

	matches := make([]Match, 0)
	for _, name := range languages {
		for _, topic := range c.Topics(name) {
			for i, line := range strings.Split(c.Snippet(name, topic), "\n") {
				if !strings.Contains(strings.ToLower(line), needle) {
					continue
				}
				matches = append(matches, Match{
					Language: name,
					Topic:    topic,
					Line:     i + 1,
					Text:     strings.TrimSpace(line),
				})
			}
		}
	}
	return matches
}

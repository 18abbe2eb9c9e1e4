package catalog

import (
	"reflect"
	"testing"
)

func TestLanguagesStableOrder(t *testing.T) {
	c := New()
	want := []string{"python", "java", "perl", "lua", "kotlin"}

	if got := c.Languages(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected languages %v, got %v", want, got)
	}

	langs := c.Languages()
	langs[0] = "cobol"
	if got := c.Languages(); got[0] != "python" {
		t.Fatalf("expected Languages to return a copy, got %v", got)
	}
}

func TestSnippetCoversEverySupportedPair(t *testing.T) {
	c := New()
	for _, lang := range c.Languages() {
		for _, topic := range StandardTopics {
			first := c.Snippet(lang, topic)
			if first == "" || first == NotFoundSnippet {
				t.Fatalf("expected snippet for %s/%s, got %q", lang, topic, first)
			}
			if second := New().Snippet(lang, topic); second != first {
				t.Fatalf("expected deterministic snippet for %s/%s", lang, topic)
			}
		}
	}
}

func TestSnippetMissesReturnSentinel(t *testing.T) {
	c := New()
	cases := []struct {
		lang  string
		topic string
	}{
		{"ruby", "hello"},
		{"python", "loop"},
		{"", ""},
		{"Python", "hello"},
	}
	for _, tc := range cases {
		if got := c.Snippet(tc.lang, tc.topic); got != NotFoundSnippet {
			t.Fatalf("expected not-found sentinel for %q/%q, got %q", tc.lang, tc.topic, got)
		}
	}
}

func TestSnippetPythonHello(t *testing.T) {
	if got := New().Snippet("python", "hello"); got != `print("Hello, world!")` {
		t.Fatalf("unexpected python hello snippet: %q", got)
	}
}

func TestDocLink(t *testing.T) {
	c := New()
	if got := c.DocLink("lua"); got != "https://www.lua.org/manual/5.4/" {
		t.Fatalf("unexpected lua doc link: %q", got)
	}
	if got := c.DocLink("kotlin"); got != "https://kotlinlang.org/docs/home.html" {
		t.Fatalf("unexpected kotlin doc link: %q", got)
	}
	if got := c.DocLink("brainfuck"); got != NotFoundDoc {
		t.Fatalf("expected doc sentinel, got %q", got)
	}
}

func TestTip(t *testing.T) {
	c := New()
	if got := c.Tip("kotlin"); got != "Prefer val over var when possible." {
		t.Fatalf("unexpected kotlin tip: %q", got)
	}
	if got := c.Tip("cobol"); got != NotFoundTip {
		t.Fatalf("expected tip sentinel, got %q", got)
	}
}

func TestCustomSnippetsOverrideAndExtend(t *testing.T) {
	c := New(WithCustomSnippets(map[string]map[string]string{
		"python": {
			"hello": `print("hi")`,
			"loop":  "for i in range(3):\n    print(i)",
			"empty": "",
		},
		"ruby": {"hello": `puts "hi"`},
	}))

	if got := c.Snippet("python", "hello"); got != `print("hi")` {
		t.Fatalf("expected override, got %q", got)
	}
	if got := c.Snippet("python", "loop"); got == NotFoundSnippet {
		t.Fatalf("expected custom topic to resolve")
	}
	if got := c.Snippet("python", "empty"); got != NotFoundSnippet {
		t.Fatalf("expected empty custom snippet to be skipped, got %q", got)
	}
	if c.IsSupported("ruby") {
		t.Fatalf("expected custom snippets not to register new languages")
	}
	if got := c.Snippet("ruby", "hello"); got != NotFoundSnippet {
		t.Fatalf("expected unsupported custom language to miss, got %q", got)
	}

	want := []string{"hello", "function", "class", "loop"}
	if got := c.Topics("python"); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected topics %v, got %v", want, got)
	}
	if got := New().Snippet("python", "hello"); got != `print("Hello, world!")` {
		t.Fatalf("expected custom snippets not to leak into other catalogs, got %q", got)
	}
}

func TestTopicsUnknownLanguage(t *testing.T) {
	if topics := New().Topics("cobol"); topics != nil {
		t.Fatalf("expected nil topics, got %v", topics)
	}
}

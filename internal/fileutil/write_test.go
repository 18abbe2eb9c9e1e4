package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteIfChangedTracked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	wrote, err := WriteIfChangedTracked(path, []byte("one"))
	if err != nil || !wrote {
		t.Fatalf("expected first write, got wrote=%t err=%v", wrote, err)
	}
	wrote, err = WriteIfChangedTracked(path, []byte("one"))
	if err != nil || wrote {
		t.Fatalf("expected unchanged content to be skipped, got wrote=%t err=%v", wrote, err)
	}
	wrote, err = WriteIfChangedTracked(path, []byte("two"))
	if err != nil || !wrote {
		t.Fatalf("expected changed content to be rewritten, got wrote=%t err=%v", wrote, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if string(data) != "two" {
		t.Fatalf("expected file to hold latest content, got %q", data)
	}
}

func TestWriteFileAllCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "snippet.py")
	if err := WriteFileAll(path, []byte("print(1)")); err != nil {
		t.Fatalf("WriteFileAll failed: %v", err)
	}
	if err := WriteFileAll(path, []byte("print(2)")); err != nil {
		t.Fatalf("WriteFileAll overwrite failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if string(data) != "print(2)" {
		t.Fatalf("expected overwritten content, got %q", data)
	}
}

func TestPrintJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, map[string][]string{"languages": {"lua"}}); err != nil {
		t.Fatalf("PrintJSON failed: %v", err)
	}
	want := "{\n  \"languages\": [\n    \"lua\"\n  ]\n}\n"
	if buf.String() != want {
		t.Fatalf("unexpected json output:\n%s", buf.String())
	}
}

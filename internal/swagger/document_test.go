package swagger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "absent.json")

	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	var de *DocError
	if !errors.As(err, &de) {
		t.Fatalf("expected DocError, got %T: %v", err, err)
	}
	if de.Code != InputError {
		t.Errorf("code: want %s got %s", InputError, de.Code)
	}
	if !strings.Contains(de.Message, "absent.json") {
		t.Errorf("message should name the file: %q", de.Message)
	}
	if de.Unwrap() == nil {
		t.Errorf("expected wrapped cause")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	var de *DocError
	if !errors.As(err, &de) || de.Code != ParseError {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestSave_IndentationAndRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "swagger.json")
	doc := Document{
		"swagger": "2.0",
		"definitions": map[string]any{
			"models.FolderRequest": map[string]any{"type": "object"},
		},
	}

	if err := Save(doc, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	s := string(raw)
	if !strings.Contains(s, "\n  \"definitions\"") {
		t.Errorf("expected two-space indentation, got:\n%s", s)
	}
	if !strings.HasSuffix(s, "\n") {
		t.Errorf("expected trailing newline")
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	defs, ok := reloaded.Definitions()
	if !ok {
		t.Fatalf("definitions lost on round trip")
	}
	folder, ok := defs["models.FolderRequest"].(map[string]any)
	if !ok || folder["type"] != "object" {
		t.Fatalf("definition content lost: %#v", defs)
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// Using a directory as the target file forces the rename to fail.
	path := filepath.Join(dir, "as-dir")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err := Save(Document{"swagger": "2.0"}, path)
	if err == nil {
		t.Fatalf("expected write error")
	}
	var de *DocError
	if !errors.As(err, &de) || de.Code != WriteError {
		t.Fatalf("expected WriteError, got %v", err)
	}
}

func TestDocument_Definitions(t *testing.T) {
	t.Parallel()
	if _, ok := (Document{"swagger": "2.0"}).Definitions(); ok {
		t.Errorf("missing definitions should report ok=false")
	}
	if _, ok := (Document{"definitions": "nope"}).Definitions(); ok {
		t.Errorf("non-object definitions should report ok=false")
	}
	doc := Document{"definitions": map[string]any{"models.X": map[string]any{}}}
	defs, ok := doc.Definitions()
	if !ok || len(defs) != 1 {
		t.Errorf("definitions accessor: ok=%v defs=%v", ok, defs)
	}
}

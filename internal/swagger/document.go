package swagger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ErrorCode categorizes document errors for clearer handling and messaging.
type ErrorCode string

const (
	InputError      ErrorCode = "InputError"
	ParseError      ErrorCode = "ParseError"
	WriteError      ErrorCode = "WriteError"
	ConversionError ErrorCode = "ConversionError"
	ValidationError ErrorCode = "ValidationError"
)

// DocError is a structured error carrying the location of the offending document.
type DocError struct {
	Code     ErrorCode
	Message  string
	Location string // file path
	Cause    error
}

func (e *DocError) Error() string { return e.Message }
func (e *DocError) Unwrap() error { return e.Cause }

// Document is a parsed Swagger/OpenAPI JSON tree. Apart from the top-level
// "definitions" mapping it is treated as opaque: existing keys are never
// removed or rewritten, only added to.
type Document map[string]any

// Definitions returns the top-level definitions mapping. ok is false when the
// document carries no definitions object; that is a valid document, not an
// error.
func (d Document) Definitions() (map[string]any, bool) {
	defs, ok := d["definitions"].(map[string]any)
	return defs, ok
}

// Load reads and parses the JSON document at path.
func Load(path string) (Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &DocError{Code: InputError, Message: fmt.Sprintf("resolve path: %v", err), Location: path, Cause: err}
	}
	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, &DocError{Code: InputError, Message: fmt.Sprintf("read file %s: %v", abs, err), Location: abs, Cause: err}
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &DocError{Code: ParseError, Message: fmt.Sprintf("parse %s: %v", abs, err), Location: abs, Cause: err}
	}
	return doc, nil
}

// Save re-serializes the document with two-space indentation and writes it
// over path. Mapping keys come out in Go's sorted marshal order, so callers
// must not rely on byte-for-byte preservation of the original key order.
func Save(doc Document, path string) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &DocError{Code: WriteError, Message: fmt.Sprintf("encode document: %v", err), Location: path, Cause: err}
	}
	out = append(out, '\n')

	abs, err := filepath.Abs(path)
	if err != nil {
		return &DocError{Code: WriteError, Message: fmt.Sprintf("resolve path: %v", err), Location: path, Cause: err}
	}

	// Atomic write via temp + rename so a failed run never truncates the doc.
	tmp := abs + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return &DocError{Code: WriteError, Message: fmt.Sprintf("write %s: %v", abs, err), Location: abs, Cause: err}
	}
	if err := os.Rename(tmp, abs); err != nil {
		_ = os.Remove(tmp)
		return &DocError{Code: WriteError, Message: fmt.Sprintf("place file at %s: %v", abs, err), Location: abs, Cause: err}
	}
	return nil
}

package swagger

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openapi2 "github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"gopkg.in/yaml.v3"
)

// Report summarizes a verified Swagger 2.0 document.
type Report struct {
	Version     string
	Title       string
	Definitions int
	Paths       int
}

// Verify parses data as a Swagger 2.0 document, converts it to OpenAPI v3 via
// kin-openapi, and validates the converted document. location is used for
// error reporting only. OpenAPI 3.x inputs are rejected; this tool only
// targets Swagger 2.0 documents.
func Verify(ctx context.Context, data []byte, location string) (*Report, error) {
	version, err := detectSpecVersion(data)
	if err != nil {
		return nil, &DocError{Code: ParseError, Message: err.Error(), Location: location, Cause: err}
	}
	if version != 2 {
		return nil, &DocError{Code: ValidationError, Message: "only Swagger 2.0 documents are supported (found OpenAPI 3.x)", Location: location}
	}

	// The documents this tool processes are JSON; the typed parse must go
	// through json.Unmarshal so kin-openapi's unmarshalers pick up $ref and
	// x- extension keys.
	var v2 openapi2.T
	if err := json.Unmarshal(data, &v2); err != nil {
		return nil, &DocError{Code: ParseError, Message: fmt.Sprintf("parse swagger 2.0: %v", err), Location: location, Cause: err}
	}

	v3, err := openapi2conv.ToV3(&v2)
	if err != nil {
		return nil, &DocError{Code: ConversionError, Message: fmt.Sprintf("convert v2→v3: %v", err), Location: location, Cause: err}
	}
	if err := v3.Validate(ctx); err != nil {
		return nil, &DocError{Code: ValidationError, Message: err.Error(), Location: location, Cause: err}
	}

	return &Report{
		Version:     v2.Swagger,
		Title:       v2.Info.Title,
		Definitions: len(v2.Definitions),
		Paths:       len(v2.Paths),
	}, nil
}

// detectSpecVersion returns 3 for OpenAPI v3, 2 for Swagger v2, else an error.
// yaml.Unmarshal accepts JSON input as well.
func detectSpecVersion(data []byte) (int, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return 0, fmt.Errorf("parse spec: %w", err)
	}
	if v, ok := root["openapi"]; ok {
		if s, _ := v.(string); strings.HasPrefix(strings.TrimSpace(s), "3.") {
			return 3, nil
		}
	}
	if v, ok := root["swagger"]; ok {
		if s, _ := v.(string); strings.HasPrefix(strings.TrimSpace(s), "2.") {
			return 2, nil
		}
	}
	return 0, fmt.Errorf("spec: missing or unknown version (expected 'swagger: 2.0' or 'openapi: 3.x')")
}

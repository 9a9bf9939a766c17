package swagger

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const minimalV2JSON = `{
  "swagger": "2.0",
  "info": {"title": "GCP Automation API", "version": "1.0"},
  "paths": {
    "/folders": {
      "post": {
        "responses": {"200": {"description": "ok"}}
      }
    }
  },
  "definitions": {
    "models.FolderRequest": {"type": "object"}
  }
}`

func TestVerify_MinimalV2(t *testing.T) {
	t.Parallel()
	report, err := Verify(context.Background(), []byte(minimalV2JSON), "swagger.json")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if report.Version != "2.0" {
		t.Errorf("version: %q", report.Version)
	}
	if report.Title != "GCP Automation API" {
		t.Errorf("title: %q", report.Title)
	}
	if report.Definitions != 1 {
		t.Errorf("definitions: %d", report.Definitions)
	}
	if report.Paths != 1 {
		t.Errorf("paths: %d", report.Paths)
	}
}

func TestVerify_RejectsV3(t *testing.T) {
	t.Parallel()
	doc := `{"openapi": "3.0.0", "info": {"title": "t", "version": "1"}, "paths": {}}`

	_, err := Verify(context.Background(), []byte(doc), "swagger.json")
	if err == nil {
		t.Fatalf("expected v3 documents to be rejected")
	}
	var de *DocError
	if !errors.As(err, &de) || de.Code != ValidationError {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(de.Message, "Swagger 2.0") {
		t.Errorf("message should mention Swagger 2.0: %q", de.Message)
	}
}

func TestVerify_MissingVersion(t *testing.T) {
	t.Parallel()
	_, err := Verify(context.Background(), []byte(`{"info": {"title": "t"}}`), "swagger.json")
	if err == nil {
		t.Fatalf("expected error for missing version key")
	}
	var de *DocError
	if !errors.As(err, &de) || de.Code != ParseError {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()
	_, err := Verify(context.Background(), []byte("{"), "swagger.json")
	if err == nil {
		t.Fatalf("expected error for malformed input")
	}
	var de *DocError
	if !errors.As(err, &de) || de.Code != ParseError {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestDetectSpecVersion(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"swagger 2.0", `{"swagger": "2.0"}`, 2},
		{"openapi 3.0", `{"openapi": "3.0.3"}`, 3},
		{"openapi 3.1", `{"openapi": "3.1.0"}`, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := detectSpecVersion([]byte(tc.in))
			if err != nil {
				t.Fatalf("detect: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %d got %d", tc.want, got)
			}
		})
	}

	if _, err := detectSpecVersion([]byte(`{"swagger": "1.2"}`)); err == nil {
		t.Fatalf("expected error for unsupported version")
	}
}

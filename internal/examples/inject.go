package examples

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stuartshay/swagger-enrich/internal/swagger"
)

const definitionPrefix = "models."

// Example is one named example payload in the shape Swagger UI renders under
// a definition's x-examples extension.
type Example struct {
	Summary     string         `json:"summary"`
	Description string         `json:"description"`
	Value       map[string]any `json:"value"`
}

// Inject attaches Basic and Advanced x-examples to every definition in doc
// whose key matches "models.<Name>" for a curated <Name>. Keys already
// present in a matched definition are left untouched; a pre-existing
// x-examples entry is overwritten. Documents without a definitions mapping
// pass through unchanged. Returns the full names of patched definitions in
// sorted order.
func Inject(doc swagger.Document) []string {
	defs, ok := doc.Definitions()
	if !ok {
		return nil
	}

	var patched []string
	for _, name := range modelNames() {
		full := definitionPrefix + name
		def, ok := defs[full].(map[string]any)
		if !ok {
			continue
		}
		payloads := table[name]
		def["x-examples"] = map[string]Example{
			"Basic": {
				Summary:     "Basic Example",
				Description: fmt.Sprintf("Simple %s with minimal required fields", noun(name)),
				Value:       payloads.Basic,
			},
			"Advanced": {
				Summary:     "Advanced Example",
				Description: fmt.Sprintf("Enterprise %s with all available options", noun(name)),
				Value:       payloads.Advanced,
			},
		}
		patched = append(patched, full)
	}
	return patched
}

// noun derives the description noun from a model name: lower-cased, with the
// trailing "request" suffix stripped.
func noun(model string) string {
	return strings.TrimSuffix(strings.ToLower(model), "request")
}

func modelNames() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

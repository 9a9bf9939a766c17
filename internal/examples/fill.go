package examples

import (
	"sort"
	"strings"

	"github.com/bxcodec/faker/v4"

	"github.com/stuartshay/swagger-enrich/internal/swagger"
)

// FillMissing synthesizes a Basic x-examples entry for object definitions
// that have no curated payloads and no x-examples of their own. Property
// values come from the schema: a declared default or the first enum member
// wins, otherwise a placeholder is faked per type. Returns the full names of
// filled definitions in sorted order.
func FillMissing(doc swagger.Document) []string {
	defs, ok := doc.Definitions()
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(defs))
	for k := range defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var filled []string
	for _, full := range keys {
		if curated(full) {
			continue
		}
		def, ok := defs[full].(map[string]any)
		if !ok {
			continue
		}
		if _, exists := def["x-examples"]; exists {
			continue
		}
		typ, _ := def["type"].(string)
		props, ok := def["properties"].(map[string]any)
		if typ != "object" || !ok || len(props) == 0 {
			continue
		}
		def["x-examples"] = map[string]Example{
			"Basic": {
				Summary:     "Basic Example",
				Description: "Generated placeholder payload",
				Value:       synthesize(props),
			},
		}
		filled = append(filled, full)
	}
	return filled
}

func curated(full string) bool {
	if !strings.HasPrefix(full, definitionPrefix) {
		return false
	}
	_, ok := table[strings.TrimPrefix(full, definitionPrefix)]
	return ok
}

func synthesize(props map[string]any) map[string]any {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	value := make(map[string]any, len(props))
	for _, name := range names {
		prop, ok := props[name].(map[string]any)
		if !ok {
			continue
		}
		if dv, ok := prop["default"]; ok && dv != nil {
			value[name] = dv
			continue
		}
		if enum, ok := prop["enum"].([]any); ok && len(enum) > 0 {
			value[name] = enum[0]
			continue
		}
		switch prop["type"] {
		case "string":
			value[name] = faker.Word()
		case "integer":
			value[name] = faker.UnixTime()
		case "number":
			value[name] = float64(faker.UnixTime())
		case "boolean":
			value[name] = true
		}
	}
	return value
}

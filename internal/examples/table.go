package examples

// Payloads holds the curated Basic and Advanced request bodies for one model.
// The payloads are plain JSON trees so they splice into the document as-is.
type Payloads struct {
	Basic    map[string]any
	Advanced map[string]any
}

// table maps short model names to their curated payloads. Each name is keyed
// in the document's definitions as "models.<Name>".
var table = map[string]Payloads{
	"BucketRequest": {
		Basic: map[string]any{
			"name":          "my-simple-storage-bucket",
			"location":      "us-central1",
			"storage_class": "STANDARD",
		},
		Advanced: map[string]any{
			"name":          "my-enterprise-bucket-2024",
			"location":      "us-central1",
			"storage_class": "STANDARD",
			"labels": map[string]any{
				"environment": "production",
				"team":        "platform",
				"cost-center": "engineering",
			},
			"versioning":   true,
			"kms_key_name": "projects/velvety-byway-327718/locations/us-central1/keyRings/bucket-encryption/cryptoKeys/bucket-key",
			"retention_policy": map[string]any{
				"retention_period_seconds": 7776000, // 90 days
				"is_locked":                false,
			},
			"uniform_bucket_level_access": true,
			"public_access_prevention":    "enforced",
		},
	},
	"ProjectRequest": {
		Basic: map[string]any{
			"project_id":   "my-simple-project-2024",
			"display_name": "My Simple Project",
		},
		Advanced: map[string]any{
			"project_id":   "enterprise-app-prod-2024",
			"display_name": "Enterprise Application - Production",
			"parent_id":    "123456789012",
			"parent_type":  "organization",
			"labels": map[string]any{
				"environment": "production",
				"team":        "backend",
				"cost-center": "engineering",
				"compliance":  "sox",
			},
		},
	},
	"FolderRequest": {
		Basic: map[string]any{
			"display_name": "Development Environment",
			"parent_id":    "123456789012",
			"parent_type":  "organization",
		},
		Advanced: map[string]any{
			"display_name": "Production - North America Region",
			"parent_id":    "987654321098",
			"parent_type":  "folder",
		},
	},
}

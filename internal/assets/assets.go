// Package assets exposes the schemas and templates embedded in the
// weedoc binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed embedded_templates
var Templates embed.FS

//go:embed embedded_schemas
var Schemas embed.FS

// SchemaInfo holds schema metadata.
type SchemaInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Directory-based versioned schemas (v1.0.0 is current version)
var knownSchemas = map[string]string{
	"snapshot-v1.0.0": "embedded_schemas/schemas/snapshot/v1.0.0/snapshot.yaml",
}

func GetTemplatesFS() fs.FS {
	if sub, err := fs.Sub(Templates, "embedded_templates"); err == nil {
		return sub
	}
	return Templates
}

func GetSchemasFS() fs.FS {
	if sub, err := fs.Sub(Schemas, "embedded_schemas"); err == nil {
		return sub
	}
	return Schemas
}

// GetSchema returns the embedded schema bytes by embed path
// (e.g., "embedded_schemas/schemas/snapshot/v1.0.0/snapshot.yaml").
func GetSchema(path string) ([]byte, bool) {
	data, err := Schemas.ReadFile(path)
	return data, err == nil
}

// GetTemplate returns the embedded template bytes by relative path
// (e.g., "report/report.md.hbs").
func GetTemplate(relPath string) ([]byte, bool) {
	data, err := fs.ReadFile(GetTemplatesFS(), relPath)
	return data, err == nil
}

// GetSchemaNames returns the list of available schemas with metadata.
func GetSchemaNames() []SchemaInfo {
	var infos []SchemaInfo
	for name, path := range knownSchemas {
		// Verify the schema exists
		if _, ok := GetSchema(path); ok {
			infos = append(infos, SchemaInfo{Name: name, Path: path})
		}
	}
	return infos
}

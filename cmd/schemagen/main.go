package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"

	"github.com/appengine-ltd/idlecraft/internal/game"
	"github.com/appengine-ltd/idlecraft/internal/save"
)

type schemaFile struct {
	Name   string
	Schema *jsonschema.Schema
}

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the JSON schemas into")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	for _, f := range buildSchemas() {
		path := filepath.Join(outDir, f.Name)
		if err := writeSchema(path, f.Schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", f.Name, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeOf(uuid.UUID{}) {
				return &jsonschema.Schema{Type: "string", Format: "uuid"}
			}
			return nil
		},
	}
}

func buildSchemas() []schemaFile {
	return []schemaFile{
		{Name: "items.schema.json", Schema: arraySchema(game.ItemData{}, "Item Database", "Static item definitions loaded from data/items.json.")},
		{Name: "quests.schema.json", Schema: arraySchema(game.QuestData{}, "Quest Database", "Static quest definitions loaded from data/quests.json.")},
		{Name: "save.schema.json", Schema: saveSchema()},
	}
}

func arraySchema(entry any, title, description string) *jsonschema.Schema {
	entrySchema := newReflector().ReflectFromType(reflect.TypeOf(entry))
	entrySchema.Version = ""
	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Type:        "array",
		Title:       title,
		Description: description,
		Items:       entrySchema,
	}
}

func saveSchema() *jsonschema.Schema {
	schema := newReflector().Reflect(new(save.File))
	schema.Title = "Idlecraft Save"
	schema.Description = fmt.Sprintf("Save file written by the game, format version %d.", save.FormatVersion)
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}

package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/fixwire/internal/messages"
	"github.com/danmuck/fixwire/internal/protocol/schema"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Template renders the built-in messages as a definition file.
func Template(format string) (string, error) {
	return Render(format, messages.All()...)
}

// Render encodes schemas as a definition file in format "toml" or "yaml".
func Render(format string, schemas ...*schema.Schema) (string, error) {
	file := CatalogFile{Messages: make([]MessageDef, 0, len(schemas))}
	for _, s := range schemas {
		file.Messages = append(file.Messages, Definition(s))
	}
	var buf bytes.Buffer
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "toml":
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(file); err != nil {
			return "", err
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return "", err
		}
		if err := enc.Close(); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown catalog format: %s", format)
	}
	return buf.String(), nil
}

func WriteTemplate(path, format string, overwrite bool) error {
	template, err := Template(format)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

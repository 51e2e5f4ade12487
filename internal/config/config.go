package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/danmuck/fixwire/internal/protocol/catalog"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CatalogFile is a schema definition file.
type CatalogFile struct {
	Messages []MessageDef `toml:"message" yaml:"message"`
}

// MessageDef declares one message layout. Field order is wire order.
type MessageDef struct {
	Name   string     `toml:"name" yaml:"name"`
	Fields []FieldDef `toml:"field" yaml:"field"`
}

// FieldDef declares one field. Length applies to text and number kinds, Char
// to literal kinds.
type FieldDef struct {
	Name   string `toml:"name" yaml:"name"`
	Kind   string `toml:"kind" yaml:"kind"`
	Length int    `toml:"length,omitempty" yaml:"length,omitempty"`
	Char   string `toml:"char,omitempty" yaml:"char,omitempty"`
}

// LoadCatalog reads a definition file and builds its catalog.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	file, err := LoadCatalogFile(path)
	if err != nil {
		return nil, err
	}
	c, err := BuildCatalog(file)
	if err != nil {
		return nil, fmt.Errorf("catalog build failed (%s): %w", path, err)
	}
	return c, nil
}

// LoadCatalogFile decodes and validates a definition file. The format follows
// the extension: .toml, .yaml or .yml.
func LoadCatalogFile(path string) (CatalogFile, error) {
	var file CatalogFile
	if err := loadFile(path, &file); err != nil {
		return CatalogFile{}, err
	}
	if err := ValidateCatalogFile(file); err != nil {
		return CatalogFile{}, fmt.Errorf("catalog invalid (%s): %w", path, err)
	}
	return file, nil
}

func loadFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(out)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(out); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return fmt.Errorf("config format unsupported (%s): %q", path, ext)
	}
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		return fmt.Errorf("config parse failed (%s): %w\n%s", path, err, strict.String())
	}
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateCatalogFile(file CatalogFile) error {
	if len(file.Messages) == 0 {
		return fmt.Errorf("no messages defined")
	}
	for i, msg := range file.Messages {
		if err := ValidateMessageDef(msg); err != nil {
			return fmt.Errorf("message[%d] invalid: %w", i, err)
		}
	}
	return nil
}

func ValidateMessageDef(msg MessageDef) error {
	if strings.TrimSpace(msg.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(msg.Fields) == 0 {
		return fmt.Errorf("message %s has no fields", msg.Name)
	}
	for i, f := range msg.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("field[%d] name is required", i)
		}
		if strings.TrimSpace(f.Kind) == "" {
			return fmt.Errorf("field %s kind is required", f.Name)
		}
	}
	return nil
}

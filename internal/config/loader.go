package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "editor.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// editorSchema compiles the embedded JSON schema once.
func editorSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, strings.NewReader(editorSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("config: cannot load schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("config: cannot compile schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// Parse validates data against the editor schema and decodes it on top of
// the default configuration, so a file only needs the keys it changes.
// A tools list, when present, replaces the default palette entirely.
func Parse(data []byte) (EditorConfig, error) {
	cfg := DefaultEditorConfig()

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return cfg, fmt.Errorf("config: yaml unmarshal: %w", err)
	}
	if doc == nil {
		return cfg, nil // empty file
	}

	// The validator works on JSON values; round-trip to normalize the
	// YAML decoder's types.
	raw, err := json.Marshal(doc)
	if err != nil {
		return cfg, fmt.Errorf("config: cannot convert to json: %w", err)
	}
	var jsonDoc any
	if err := json.Unmarshal(raw, &jsonDoc); err != nil {
		return cfg, fmt.Errorf("config: cannot convert to json: %w", err)
	}

	sch, err := editorSchema()
	if err != nil {
		return cfg, err
	}
	if err := sch.Validate(jsonDoc); err != nil {
		return cfg, fmt.Errorf("config: invalid: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: yaml decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadEditor loads the editor configuration.
// Search order: customPath -> ~/.gridsim/configs/editor.yaml -> ./configs/editor.yaml -> embedded default
func LoadEditor(customPath string) (EditorConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultEditorConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("editor.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/editor.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultEditorYAML)
	if err != nil {
		return DefaultEditorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsim", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

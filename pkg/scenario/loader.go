package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Load parses a scenario document from YAML or JSON bytes. The document is
// schema-validated before decoding.
func Load(data []byte) (*Document, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if generic == nil {
		return nil, fmt.Errorf("scenario document is empty")
	}
	if err := validateDocument(generic); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and parses a single scenario file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	doc, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadDir loads every scenario file under dir (recursively), matching
// *.yaml, *.yml, and *.json. Files are loaded in lexical path order so
// setup registration order is stable across platforms.
func LoadDir(dir string) ([]*Document, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, "**/*.{yaml,yml,json}")
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenario directory: %w", err)
	}
	sort.Strings(matches)

	var docs []*Document
	for _, rel := range matches {
		doc, err := LoadFile(filepath.Join(dir, rel))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDocument reads a tree file. JSON is used for .json files and YAML for
// everything else (YAML also accepts JSON input). The file may hold a
// Document or a bare list of elements.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree file: %w", err)
	}
	doc, err := DecodeDocument(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// DecodeDocument parses tree file contents.
func DecodeDocument(data []byte, isJSON bool) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty tree file")
	}

	// A bare list is detected by trying it first.
	var doc Document
	if isJSON {
		if trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &doc.Elements); err != nil {
				return nil, fmt.Errorf("decode json: %w", err)
			}
		} else if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	} else {
		var list []Element
		if err := yaml.Unmarshal(trimmed, &list); err == nil {
			doc.Elements = list
		} else if err := yaml.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}
	if len(doc.Elements) == 0 {
		return nil, fmt.Errorf("tree file has no elements")
	}
	return &doc, nil
}

// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package prefschema reads the preference schema document that the string
// table is generated from. The schema is a JSON Schema object whose
// "properties" enumerate the preference keys in display order.
package prefschema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/invopop/jsonschema"
)

type Entry struct {
	Key         string `json:"key"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type,omitempty"`
}

func ReadFile(fileName string) ([]Entry, error) {
	barr, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("cannot read schema %q: %w", fileName, err)
	}
	entries, err := Parse(barr)
	if err != nil {
		return nil, fmt.Errorf("schema %q: %w", fileName, err)
	}
	return entries, nil
}

// Parse returns one Entry per schema property, in document order.
func Parse(data []byte) ([]Entry, error) {
	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("invalid schema json: %w", err)
	}
	if schema.Properties == nil || schema.Properties.Len() == 0 {
		return nil, fmt.Errorf("schema has no properties")
	}
	if err := checkDuplicateKeys(data); err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, schema.Properties.Len())
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key
		prop := pair.Value
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("property key cannot be blank")
		}
		if prop == nil {
			return nil, fmt.Errorf("property %q has no definition", key)
		}
		if strings.TrimSpace(prop.Description) == "" {
			return nil, fmt.Errorf("property %q is missing a description", key)
		}
		entries = append(entries, Entry{
			Key:         key,
			Title:       prop.Title,
			Description: prop.Description,
			Type:        prop.Type,
		})
	}
	return entries, nil
}

// encoding/json (and the ordered map) keep the last of two duplicate keys,
// which would silently drop a preference from the table.
func checkDuplicateKeys(data []byte) error {
	seen := make(map[string]bool)
	var dupKey string
	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		keyStr := string(key)
		if seen[keyStr] && dupKey == "" {
			dupKey = keyStr
		}
		seen[keyStr] = true
		return nil
	}, "properties")
	if err != nil {
		return fmt.Errorf("invalid schema json: %w", err)
	}
	if dupKey != "" {
		return fmt.Errorf("duplicate property %q", dupKey)
	}
	return nil
}

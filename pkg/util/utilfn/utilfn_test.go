// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package utilfn

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileIfDifferent(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "out.txt")
	written, err := WriteFileIfDifferent(fileName, []byte("hello"))
	if err != nil || !written {
		t.Fatalf("first write: written=%v err=%v", written, err)
	}
	written, err = WriteFileIfDifferent(fileName, []byte("hello"))
	if err != nil || written {
		t.Errorf("identical write: written=%v err=%v; want false, nil", written, err)
	}
	written, err = WriteFileIfDifferent(fileName, []byte("world"))
	if err != nil || !written {
		t.Errorf("changed write: written=%v err=%v; want true, nil", written, err)
	}
	barr, _ := os.ReadFile(fileName)
	if string(barr) != "world" {
		t.Errorf("file contents = %q; want %q", barr, "world")
	}
}

func TestFileMatches(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "out.txt")
	ok, err := FileMatches(fileName, []byte("a"))
	if err != nil || ok {
		t.Errorf("missing file: ok=%v err=%v; want false, nil", ok, err)
	}
	os.WriteFile(fileName, []byte("a"), 0644)
	if ok, _ := FileMatches(fileName, []byte("a")); !ok {
		t.Errorf("expected match")
	}
	if ok, _ := FileMatches(fileName, []byte("b")); ok {
		t.Errorf("expected mismatch")
	}
}

func TestGetOrderedMapKeys(t *testing.T) {
	keys := GetOrderedMapKeys(map[string]int{"b": 1, "c": 2, "a": 3})
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("GetOrderedMapKeys = %v; want [a b c]", keys)
	}
}

func TestDoMapStructure(t *testing.T) {
	type strs struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	var out strs
	err := DoMapStructure(&out, map[string]any{"title": "T", "description": "D"})
	if err != nil {
		t.Fatalf("DoMapStructure error: %v", err)
	}
	if out.Title != "T" || out.Description != "D" {
		t.Errorf("DoMapStructure = %+v", out)
	}
	err = DoMapStructure(&out, map[string]any{"titel": "typo"})
	if err == nil {
		t.Errorf("expected error for unknown field")
	}
}

// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package prefbundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadEmbedded(t *testing.T) {
	set, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded returned error: %v", err)
	}
	locales := set.Locales()
	if len(locales) != 2 || locales[0] != "de" || locales[1] != "fr" {
		t.Fatalf("Locales() = %v; want [de fr]", locales)
	}
	fr, _ := set.Get("fr")
	title, description, ok := fr.Translate("zoteroApiKey")
	if !ok || title != "Clé d'API Zotero" || description != "Clé utilisée pour les appels à l'API Zotero" {
		t.Errorf("fr zoteroApiKey = %q, %q, %v", title, description, ok)
	}
	de, _ := set.Get("de")
	strs, ok := de.Get("zoteroDataDir")
	if !ok || strs.Title != "Zotero-Datenverzeichnis" || strs.Description != "" {
		t.Errorf("de zoteroDataDir = %+v, %v", strs, ok)
	}
	if _, ok := de.Get("contextId"); ok {
		t.Errorf("de should not translate contextId")
	}
}

func TestParseJSON(t *testing.T) {
	bundle, err := ParseJSON("es", []byte(`{"theme": {"description": "El tema de color."}, "zoteroApiKey": {"title": "Clave"}}`))
	if err != nil {
		t.Fatalf("ParseJSON returned error: %v", err)
	}
	if bundle.Locale() != "es" || bundle.Len() != 2 {
		t.Errorf("bundle locale=%q len=%d", bundle.Locale(), bundle.Len())
	}
	keys := bundle.Keys()
	if keys[0] != "theme" || keys[1] != "zoteroApiKey" {
		t.Errorf("Keys() = %v", keys)
	}

	invalidTests := []struct {
		locale string
		input  string
	}{
		{"es", `{"theme": "not an object"}`},
		{"es", `{"theme": {"titel": "typo"}}`},
		{"es", `[1, 2]`},
		{"es", `{"": {"title": "x"}}`},
		{"not a locale!", `{}`},
	}
	for _, test := range invalidTests {
		if _, err := ParseJSON(test.locale, []byte(test.input)); err == nil {
			t.Errorf("ParseJSON(%q, %s) expected error", test.locale, test.input)
		}
	}
}

func TestParseINI(t *testing.T) {
	input := `
[theme]
description = Il tema; di colore # da applicare

[zoteroApiKey]
title = Chiave API Zotero
`
	bundle, err := ParseINI("it", []byte(input))
	if err != nil {
		t.Fatalf("ParseINI returned error: %v", err)
	}
	strs, _ := bundle.Get("theme")
	if strs.Description != "Il tema; di colore # da applicare" {
		t.Errorf("theme description = %q", strs.Description)
	}
	strs, _ = bundle.Get("zoteroApiKey")
	if strs.Title != "Chiave API Zotero" {
		t.Errorf("zoteroApiKey title = %q", strs.Title)
	}

	if _, err := ParseINI("it", []byte("title = orphan\n")); err == nil {
		t.Errorf("expected error for value outside a section")
	}
	if _, err := ParseINI("it", []byte("[theme]\nlabel = x\n")); err == nil {
		t.Errorf("expected error for unknown field")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/es.json":     {Data: []byte(`{"theme": {"description": "El tema de color."}}`)},
		"locales/pt-BR.ini":   {Data: []byte("[theme]\ndescription = O tema de cores.\n")},
		"locales/README.md":   {Data: []byte("ignored")},
		"locales/.hidden.ini": {Data: []byte("garbage [[")},
	}
	set, err := LoadFS(fsys, "locales")
	if err != nil {
		t.Fatalf("LoadFS returned error: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("set.Len() = %d; want 2", set.Len())
	}
	if _, ok := set.Get("pt-BR"); !ok {
		t.Errorf("expected pt-BR bundle")
	}

	dupFS := fstest.MapFS{
		"locales/es.json": {Data: []byte(`{}`)},
		"locales/es.ini":  {Data: []byte("")},
	}
	if _, err := LoadFS(dupFS, "locales"); err == nil || !strings.Contains(err.Error(), "more than once") {
		t.Errorf("expected duplicate locale error, got %v", err)
	}

	badFS := fstest.MapFS{
		"locales/es.json": {Data: []byte(`{`)},
	}
	if _, err := LoadFS(badFS, "locales"); err == nil {
		t.Errorf("expected error for malformed bundle")
	}
}

func TestMatch(t *testing.T) {
	set, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded returned error: %v", err)
	}
	tests := []struct {
		locale   string
		expected string
	}{
		{"fr", "fr"},
		{"fr-CA", "fr"},
		{"de-AT", "de"},
		{"ja-JP", ""},
		{"C", ""},
		{"", ""},
	}
	for _, test := range tests {
		bundle, ok := set.Match(test.locale)
		if test.expected == "" {
			if ok {
				t.Errorf("Match(%q) = %q; want no match", test.locale, bundle.Locale())
			}
			continue
		}
		if !ok || bundle.Locale() != test.expected {
			t.Errorf("Match(%q) = %v, %v; want %q", test.locale, bundle, ok, test.expected)
		}
	}

	empty, _ := MakeSet(nil)
	if _, ok := empty.Match("fr"); ok {
		t.Errorf("empty set should never match")
	}
}

func TestMergeAndOverlay(t *testing.T) {
	base, _ := MakeBundle("fr", map[string]Strings{
		"theme":        {Description: "Thème"},
		"zoteroApiKey": {Title: "Clé", Description: "Clé API"},
	})
	override, _ := MakeBundle("fr", map[string]Strings{
		"zoteroApiKey": {Title: "Clé Zotero"},
		"contextId":    {Description: "Identifiant"},
	})
	merged := Merge(base, override)
	strs, _ := merged.Get("zoteroApiKey")
	if strs.Title != "Clé Zotero" || strs.Description != "Clé API" {
		t.Errorf("merged zoteroApiKey = %+v", strs)
	}
	if merged.Len() != 3 {
		t.Errorf("merged.Len() = %d; want 3", merged.Len())
	}
	if Merge(nil, override) != override || Merge(base, nil) != base {
		t.Errorf("Merge with nil should return the other bundle")
	}

	baseSet, _ := MakeSet([]*Bundle{base})
	es, _ := MakeBundle("es", map[string]Strings{"theme": {Description: "Tema"}})
	overrideSet, _ := MakeSet([]*Bundle{override, es})
	overlaid, err := baseSet.Overlay(overrideSet)
	if err != nil {
		t.Fatalf("Overlay returned error: %v", err)
	}
	if locales := overlaid.Locales(); len(locales) != 2 || locales[0] != "es" || locales[1] != "fr" {
		t.Errorf("overlaid locales = %v", locales)
	}
	fr, _ := overlaid.Get("fr")
	if strs, _ := fr.Get("theme"); strs.Description != "Thème" {
		t.Errorf("overlaid fr theme = %+v", strs)
	}
}

func TestLoadDir(t *testing.T) {
	missing, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil || missing.Len() != 0 {
		t.Errorf("LoadDir(missing) = %v, %v; want empty set", missing, err)
	}
	dirName := t.TempDir()
	os.WriteFile(filepath.Join(dirName, "it.json"), []byte(`{"theme": {"description": "Il tema."}}`), 0644)
	set, err := LoadDir(dirName)
	if err != nil {
		t.Fatalf("LoadDir returned error: %v", err)
	}
	if _, ok := set.Get("it"); !ok {
		t.Errorf("expected it bundle, got %v", set.Locales())
	}
}

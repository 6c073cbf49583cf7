// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package prefstrings holds the title/description labels for user state
// preferences. Tables are immutable; a new localization is applied by
// building a new Table and swapping it in.
package prefstrings

//go:generate go run ../../cmd/generatego --schema ../../schema/user-state-schema.json --outdir .

import (
	"fmt"
	"log"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type Entry struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Translator supplies localized strings for a single locale. An empty
// title or description means "not translated".
type Translator interface {
	Locale() string
	Keys() []string
	Translate(key string) (title string, description string, ok bool)
}

type Table struct {
	locale  string
	entries *orderedmap.OrderedMap[string, Entry]
}

// MakeTable copies entries into a new table. Keys must be unique and non-blank.
func MakeTable(locale string, entries []Entry) (*Table, error) {
	om := orderedmap.New[string, Entry]()
	for _, entry := range entries {
		if strings.TrimSpace(entry.Key) == "" {
			return nil, fmt.Errorf("preference key cannot be blank")
		}
		if _, present := om.Get(entry.Key); present {
			return nil, fmt.Errorf("duplicate preference key %q", entry.Key)
		}
		om.Set(entry.Key, entry)
	}
	return &Table{locale: locale, entries: om}, nil
}

func mustMakeTable(locale string, entries []Entry) *Table {
	table, err := MakeTable(locale, entries)
	if err != nil {
		panic(err)
	}
	return table
}

// Locale is the locale of the translation applied to this table, "" for the built-in strings.
func (t *Table) Locale() string {
	return t.locale
}

func (t *Table) Len() int {
	return t.entries.Len()
}

func (t *Table) Lookup(key string) (Entry, bool) {
	return t.entries.Get(key)
}

// Title never fails: unknown keys yield "".
func (t *Table) Title(key string) string {
	entry, _ := t.entries.Get(key)
	return entry.Title
}

func (t *Table) Description(key string) string {
	entry, _ := t.entries.Get(key)
	return entry.Description
}

func (t *Table) Keys() []string {
	keys := make([]string, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (t *Table) Entries() []Entry {
	rtn := make([]Entry, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		rtn = append(rtn, pair.Value)
	}
	return rtn
}

// Localize returns a new table where translated fields replace the
// receiver's strings. Untranslated fields keep the receiver's value.
func (t *Table) Localize(tr Translator) *Table {
	if tr == nil {
		return t
	}
	for _, key := range tr.Keys() {
		if _, present := t.entries.Get(key); !present {
			log.Printf("[prefstrings] locale %s: ignoring translation for unknown key %q\n", tr.Locale(), key)
		}
	}
	entries := t.Entries()
	for idx := range entries {
		title, description, ok := tr.Translate(entries[idx].Key)
		if !ok {
			continue
		}
		if title != "" {
			entries[idx].Title = title
		}
		if description != "" {
			entries[idx].Description = description
		}
	}
	// keys were already unique in t
	return mustMakeTable(tr.Locale(), entries)
}

// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package prefbundle loads localized preference labels. A bundle file is
// named after its locale ("fr.json", "pt-BR.ini") and maps preference keys
// to a title and description.
package prefbundle

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/wavetermdev/prefstrings/pkg/util/utilfn"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"gopkg.in/ini.v1"
)

const (
	FormatJSON = ".json"
	FormatINI  = ".ini"
)

//go:embed locales/*
var embeddedLocalesFS embed.FS

type Strings struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type Bundle struct {
	locale  string
	tag     language.Tag
	entries map[string]Strings
}

func MakeBundle(locale string, strs map[string]Strings) (*Bundle, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	copied := make(map[string]Strings, len(strs))
	for key, val := range strs {
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("locale %s: preference key cannot be blank", locale)
		}
		copied[key] = val
	}
	return &Bundle{locale: locale, tag: tag, entries: copied}, nil
}

func (b *Bundle) Locale() string {
	return b.locale
}

func (b *Bundle) Tag() language.Tag {
	return b.tag
}

func (b *Bundle) Len() int {
	return len(b.entries)
}

// Keys are returned sorted.
func (b *Bundle) Keys() []string {
	return utilfn.GetOrderedMapKeys(b.entries)
}

func (b *Bundle) Get(key string) (Strings, bool) {
	strs, ok := b.entries[key]
	return strs, ok
}

func (b *Bundle) Translate(key string) (string, string, bool) {
	strs, ok := b.entries[key]
	return strs.Title, strs.Description, ok
}

// Merge returns a bundle where every non-empty field of override replaces
// the one in base. Either argument may be nil.
func Merge(base *Bundle, override *Bundle) *Bundle {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}
	merged := make(map[string]Strings, len(base.entries)+len(override.entries))
	for key, val := range base.entries {
		merged[key] = val
	}
	for key, val := range override.entries {
		cur := merged[key]
		if val.Title != "" {
			cur.Title = val.Title
		}
		if val.Description != "" {
			cur.Description = val.Description
		}
		merged[key] = cur
	}
	return &Bundle{locale: override.locale, tag: override.tag, entries: merged}
}

func ParseJSON(locale string, data []byte) (*Bundle, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("locale %s: invalid json: %w", locale, err)
	}
	strs := make(map[string]Strings, len(raw))
	for key, val := range raw {
		var entry Strings
		if err := utilfn.DoMapStructure(&entry, val); err != nil {
			return nil, fmt.Errorf("locale %s: key %q: %w", locale, key, err)
		}
		strs[key] = entry
	}
	return MakeBundle(locale, strs)
}

// ParseINI reads one section per preference key with "title" and
// "description" values.
func ParseINI(locale string, data []byte) (*Bundle, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return nil, fmt.Errorf("locale %s: invalid ini: %w", locale, err)
	}
	strs := make(map[string]Strings)
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			if len(section.Keys()) > 0 {
				return nil, fmt.Errorf("locale %s: values outside of a preference section", locale)
			}
			continue
		}
		var entry Strings
		for _, iniKey := range section.Keys() {
			switch iniKey.Name() {
			case "title":
				entry.Title = iniKey.String()
			case "description":
				entry.Description = iniKey.String()
			default:
				return nil, fmt.Errorf("locale %s: key %q: unknown field %q", locale, section.Name(), iniKey.Name())
			}
		}
		strs[section.Name()] = entry
	}
	return MakeBundle(locale, strs)
}

func parseFile(fileName string, data []byte) (*Bundle, error) {
	ext := path.Ext(fileName)
	locale := strings.TrimSuffix(path.Base(fileName), ext)
	switch ext {
	case FormatJSON:
		return ParseJSON(locale, data)
	case FormatINI:
		return ParseINI(locale, data)
	}
	return nil, fmt.Errorf("unsupported bundle format %q", ext)
}

func IsBundleFileName(fileName string) bool {
	ext := path.Ext(fileName)
	return (ext == FormatJSON || ext == FormatINI) && !strings.HasPrefix(path.Base(fileName), ".")
}

// Set is a group of bundles, at most one per locale.
type Set struct {
	bundles map[string]*Bundle
	locales []string
	matcher language.Matcher
}

func MakeSet(bundles []*Bundle) (*Set, error) {
	set := &Set{bundles: make(map[string]*Bundle)}
	for _, bundle := range bundles {
		if _, exists := set.bundles[bundle.locale]; exists {
			return nil, fmt.Errorf("locale %s is defined more than once", bundle.locale)
		}
		set.bundles[bundle.locale] = bundle
	}
	set.locales = utilfn.GetOrderedMapKeys(set.bundles)
	tags := make([]language.Tag, 0, len(set.locales))
	for _, locale := range set.locales {
		tags = append(tags, set.bundles[locale].tag)
	}
	if len(tags) > 0 {
		set.matcher = language.NewMatcher(tags)
	}
	return set, nil
}

// LoadFS loads every bundle file directly inside dir.
func LoadFS(fsys fs.FS, dir string) (*Set, error) {
	dirEntries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read locale dir %q: %w", dir, err)
	}
	var fileNames []string
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || !IsBundleFileName(dirEntry.Name()) {
			continue
		}
		fileNames = append(fileNames, path.Join(dir, dirEntry.Name()))
	}
	sort.Strings(fileNames)
	bundles := make([]*Bundle, len(fileNames))
	var group errgroup.Group
	for idx, fileName := range fileNames {
		idx, fileName := idx, fileName
		group.Go(func() error {
			data, err := fs.ReadFile(fsys, fileName)
			if err != nil {
				return fmt.Errorf("cannot read bundle %q: %w", fileName, err)
			}
			bundle, err := parseFile(fileName, data)
			if err != nil {
				return fmt.Errorf("bundle %q: %w", fileName, err)
			}
			bundles[idx] = bundle
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return MakeSet(bundles)
}

func LoadEmbedded() (*Set, error) {
	return LoadFS(embeddedLocalesFS, "locales")
}

// LoadDir loads user bundles from a directory. A missing directory is an empty set.
func LoadDir(dirName string) (*Set, error) {
	_, err := os.Stat(dirName)
	if errors.Is(err, fs.ErrNotExist) {
		return MakeSet(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot stat locale dir %q: %w", dirName, err)
	}
	return LoadFS(os.DirFS(dirName), ".")
}

func (s *Set) Locales() []string {
	return append([]string(nil), s.locales...)
}

func (s *Set) Len() int {
	return len(s.bundles)
}

func (s *Set) Get(locale string) (*Bundle, bool) {
	bundle, ok := s.bundles[locale]
	return bundle, ok
}

// Match returns the bundle that best serves locale. Unparseable locales
// ("C") and locales with no confident match return false.
func (s *Set) Match(locale string) (*Bundle, bool) {
	if s == nil || s.matcher == nil {
		return nil, false
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, false
	}
	_, idx, confidence := s.matcher.Match(tag)
	if confidence == language.No || idx < 0 || idx >= len(s.locales) {
		return nil, false
	}
	return s.bundles[s.locales[idx]], true
}

// Overlay merges override on top of s, locale by locale.
func (s *Set) Overlay(override *Set) (*Set, error) {
	merged := make(map[string]*Bundle)
	for locale, bundle := range s.bundles {
		merged[locale] = bundle
	}
	if override != nil {
		for locale, bundle := range override.bundles {
			merged[locale] = Merge(merged[locale], bundle)
		}
	}
	bundles := make([]*Bundle, 0, len(merged))
	for _, locale := range utilfn.GetOrderedMapKeys(merged) {
		bundles = append(bundles, merged[locale])
	}
	return MakeSet(bundles)
}

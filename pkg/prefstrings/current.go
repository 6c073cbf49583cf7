// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package prefstrings

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/wavetermdev/prefstrings/pkg/prefbundle"
)

var defaultTable = mustMakeTable("", defaultEntries)

var currentTable atomic.Pointer[Table]

var embeddedOnce sync.Once
var embeddedSet *prefbundle.Set
var embeddedErr error

func init() {
	currentTable.Store(defaultTable)
}

// Default is the table compiled from the schema, without any translation.
func Default() *Table {
	return defaultTable
}

func Current() *Table {
	return currentTable.Load()
}

// Swap installs table as the process-wide table and returns the previous
// one. A nil table restores the default.
func Swap(table *Table) *Table {
	if table == nil {
		table = defaultTable
	}
	return currentTable.Swap(table)
}

func GetTitle(key string) string {
	return Current().Title(key)
}

func GetDescription(key string) string {
	return Current().Description(key)
}

func EmbeddedBundles() (*prefbundle.Set, error) {
	embeddedOnce.Do(func() {
		embeddedSet, embeddedErr = prefbundle.LoadEmbedded()
	})
	return embeddedSet, embeddedErr
}

// ForLocale builds the default table translated with the best embedded
// bundle for locale. With no matching bundle it returns Default().
func ForLocale(set *prefbundle.Set, locale string) *Table {
	bundle, ok := set.Match(locale)
	if !ok {
		return defaultTable
	}
	return defaultTable.Localize(bundle)
}

// SetLocale swaps in the table for locale and returns the locale of the
// bundle that was applied ("" when the built-in strings are used).
func SetLocale(locale string) (string, error) {
	set, err := EmbeddedBundles()
	if err != nil {
		return "", fmt.Errorf("cannot load embedded locale bundles: %w", err)
	}
	table := ForLocale(set, locale)
	Swap(table)
	log.Printf("[prefstrings] using locale %q for requested locale %q\n", table.Locale(), locale)
	return table.Locale(), nil
}

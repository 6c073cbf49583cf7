// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package prefwatch reloads user locale bundles when they change on disk
// and swaps the resulting table into prefstrings.
package prefwatch

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/wavetermdev/prefstrings/pkg/panichandler"
	"github.com/wavetermdev/prefstrings/pkg/prefbase"
	"github.com/wavetermdev/prefstrings/pkg/prefbundle"
	"github.com/wavetermdev/prefstrings/pkg/prefstrings"
)

var instance *Watcher
var instanceErr error
var once sync.Once

type Watcher struct {
	mutex     sync.Mutex
	watcher   *fsnotify.Watcher
	dirName   string
	locale    string
	embedded  *prefbundle.Set
	table     *prefstrings.Table
	listeners []func(*prefstrings.Table)
	started   bool
}

// GetWatcher returns the process watcher for the user locales dir and the
// OS (or PREFSTRINGS_LOCALE) locale.
func GetWatcher() (*Watcher, error) {
	once.Do(func() {
		if err := prefbase.EnsureLocalesDir(); err != nil {
			instanceErr = err
			return
		}
		instance, instanceErr = MakeWatcher(prefbase.GetLocalesDir(), prefbase.DetermineLocale())
	})
	return instance, instanceErr
}

func MakeWatcher(dirName string, locale string) (*Watcher, error) {
	embedded, err := prefstrings.EmbeddedBundles()
	if err != nil {
		return nil, fmt.Errorf("cannot load embedded bundles: %w", err)
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	err = fsWatcher.Add(dirName)
	if err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to add path %s to watcher: %w", dirName, err)
	}
	return &Watcher{
		watcher:  fsWatcher,
		dirName:  dirName,
		locale:   locale,
		embedded: embedded,
	}, nil
}

// OnChange registers fn to receive every table the watcher installs.
func (w *Watcher) OnChange(fn func(*prefstrings.Table)) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.listeners = append(w.listeners, fn)
}

// Start is a no-op after the first call or after Close.
func (w *Watcher) Start() {
	w.mutex.Lock()
	fsWatcher := w.watcher
	if fsWatcher == nil || w.started {
		w.mutex.Unlock()
		return
	}
	w.started = true
	w.mutex.Unlock()
	log.Printf("[prefwatch] watching %s for locale %q\n", w.dirName, w.locale)
	w.Reload()

	go func() {
		defer func() {
			panichandler.PanicHandler("prefwatch:Start", recover())
		}()
		for {
			select {
			case event, ok := <-fsWatcher.Events:
				if !ok {
					return
				}
				w.handleEvent(event)
			case err, ok := <-fsWatcher.Errors:
				if !ok {
					return
				}
				log.Printf("[prefwatch] watcher error: %v\n", err)
			}
		}
	}()
}

func (w *Watcher) Close() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.watcher != nil {
		w.watcher.Close()
		w.watcher = nil
		log.Printf("[prefwatch] file watcher closed\n")
	}
}

// Table is the last table this watcher installed.
func (w *Watcher) Table() *prefstrings.Table {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.table
}

// Reload rebuilds the table from the embedded and user bundles and swaps it
// in. When the user bundles cannot be read the current table is kept.
// Listeners run after the watcher lock is released, so they may call back
// into the watcher.
func (w *Watcher) Reload() (*prefstrings.Table, error) {
	table, listeners, err := w.reloadTable()
	if err != nil {
		return table, err
	}
	for _, fn := range listeners {
		w.notify(fn, table)
	}
	return table, nil
}

func (w *Watcher) reloadTable() (*prefstrings.Table, []func(*prefstrings.Table), error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	userSet, err := prefbundle.LoadDir(w.dirName)
	if err != nil {
		log.Printf("[prefwatch] keeping current strings, cannot load %s: %v\n", w.dirName, err)
		return w.table, nil, err
	}
	set, err := w.embedded.Overlay(userSet)
	if err != nil {
		log.Printf("[prefwatch] keeping current strings: %v\n", err)
		return w.table, nil, err
	}
	table := prefstrings.ForLocale(set, w.locale)
	w.table = table
	prefstrings.Swap(table)
	listeners := append(([]func(*prefstrings.Table))(nil), w.listeners...)
	return table, listeners, nil
}

// a panicking listener is logged and does not stop the watch loop
func (w *Watcher) notify(fn func(*prefstrings.Table), table *prefstrings.Table) {
	defer func() {
		panichandler.PanicHandler("prefwatch:listener", recover())
	}()
	fn(table)
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}
	if !prefbundle.IsBundleFileName(filepath.ToSlash(event.Name)) {
		return
	}
	w.Reload()
}

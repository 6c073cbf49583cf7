// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package prefbase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	PrefConfigHomeEnvVar = "PREFSTRINGS_CONFIG_HOME"
	PrefLocaleEnvVar     = "PREFSTRINGS_LOCALE"
)

const LocalesDir = "locales"
const DefaultConfigDirName = ".prefstrings"

var ConfigHome_VarCache string // caches PREFSTRINGS_CONFIG_HOME
var Locale_VarCache string     // caches PREFSTRINGS_LOCALE

var cacheOnce = &sync.Once{}

// CacheEnvVars reads the prefstrings environment once. Later changes to the
// environment are ignored for the lifetime of the process.
func CacheEnvVars() {
	cacheOnce.Do(func() {
		ConfigHome_VarCache = os.Getenv(PrefConfigHomeEnvVar)
		Locale_VarCache = os.Getenv(PrefLocaleEnvVar)
	})
}

func GetHomeDir() string {
	homeVar, err := os.UserHomeDir()
	if err != nil {
		return "/"
	}
	return homeVar
}

func GetConfigDir() string {
	CacheEnvVars()
	if ConfigHome_VarCache != "" {
		return ConfigHome_VarCache
	}
	return filepath.Join(GetHomeDir(), DefaultConfigDirName)
}

// GetLocalesDir is where user supplied bundles override the embedded ones.
func GetLocalesDir() string {
	return filepath.Join(GetConfigDir(), LocalesDir)
}

func EnsureLocalesDir() error {
	return TryMkdirs(GetLocalesDir(), 0700, "locales directory")
}

func TryMkdirs(dirName string, perm os.FileMode, dirDesc string) error {
	info, err := os.Stat(dirName)
	if errors.Is(err, fs.ErrNotExist) {
		err = os.MkdirAll(dirName, perm)
		if err != nil {
			return fmt.Errorf("cannot make %s %q: %w", dirDesc, dirName, err)
		}
		info, err = os.Stat(dirName)
	}
	if err != nil {
		return fmt.Errorf("error trying to stat %s: %w", dirDesc, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s %q must be a directory", dirDesc, dirName)
	}
	return nil
}

var osLangOnce = &sync.Once{}
var osLang string

func determineLang() string {
	ctx, cancelFn := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelFn()
	if runtime.GOOS == "darwin" {
		out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleLocale").CombinedOutput()
		if err != nil {
			log.Printf("error executing 'defaults read -g AppleLocale': %v\n", err)
			return ""
		}
		truncOut := strings.Split(string(out), "@")[0]
		return strings.TrimSpace(truncOut) + ".UTF-8"
	}
	if lang := os.Getenv("LC_ALL"); lang != "" {
		return lang
	}
	return os.Getenv("LANG")
}

func DetermineLang() string {
	osLangOnce.Do(func() {
		osLang = determineLang()
	})
	return osLang
}

// DetermineLocale returns a BCP 47 style tag ("fr-FR"), or "C" when the OS
// does not report one. PREFSTRINGS_LOCALE takes precedence.
func DetermineLocale() string {
	CacheEnvVars()
	if Locale_VarCache != "" {
		return NormalizeLocale(Locale_VarCache)
	}
	return NormalizeLocale(DetermineLang())
}

// NormalizeLocale turns POSIX locale names ("de_DE.UTF-8@euro") into tags.
func NormalizeLocale(lang string) string {
	truncated := strings.Split(lang, "@")[0]
	truncated = strings.Split(truncated, ".")[0]
	truncated = strings.TrimSpace(truncated)
	if truncated == "" || truncated == "POSIX" {
		return "C"
	}
	return strings.ReplaceAll(truncated, "_", "-")
}

// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/wavetermdev/prefstrings/pkg/gogen"
	"github.com/wavetermdev/prefstrings/pkg/prefschema"
	"github.com/wavetermdev/prefstrings/pkg/util/utilfn"
)

const (
	SchemaEnvVar = "PREFSTRINGS_SCHEMA"
	OutDirEnvVar = "PREFSTRINGS_OUTDIR"
)

const DefaultSchemaFileName = "schema/user-state-schema.json"
const DefaultOutDir = "pkg/prefstrings"

const PrefKeysFileName = "prefkeys.go"
const PrefStringsFileName = "prefstrings_defaults.go"

const PkgName = "prefstrings"
const KeyConstPrefix = "PrefKey_"

var schemaFlag string
var outDirFlag string
var checkFlag bool

var rootCmd = &cobra.Command{
	Use:           "generatego",
	Short:         "generate the preference string table from the schema",
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional
		godotenv.Load()
		if !cmd.Flags().Changed("schema") && os.Getenv(SchemaEnvVar) != "" {
			schemaFlag = os.Getenv(SchemaEnvVar)
		}
		if !cmd.Flags().Changed("outdir") && os.Getenv(OutDirEnvVar) != "" {
			outDirFlag = os.Getenv(OutDirEnvVar)
		}
	},
	RunE: generateRun,
}

func init() {
	rootCmd.Flags().StringVar(&schemaFlag, "schema", DefaultSchemaFileName, "preference schema json file")
	rootCmd.Flags().StringVar(&outDirFlag, "outdir", DefaultOutDir, "directory of the prefstrings package")
	rootCmd.Flags().BoolVar(&checkFlag, "check", false, "fail if the generated files are out of date instead of writing them")
}

type genFile struct {
	FileName string
	Contents []byte
}

func generateFiles(entries []prefschema.Entry, outDir string) []genFile {
	var keysBuf strings.Builder
	gogen.GenerateBoilerplate(&keysBuf, PkgName, nil)
	gogen.GeneratePrefKeyConsts(&keysBuf, KeyConstPrefix, entries)

	var tableBuf strings.Builder
	gogen.GenerateBoilerplate(&tableBuf, PkgName, nil)
	gogen.GeneratePrefStringTable(&tableBuf, "defaultEntries", "Entry", KeyConstPrefix, entries)

	return []genFile{
		{FileName: filepath.Join(outDir, PrefKeysFileName), Contents: []byte(keysBuf.String())},
		{FileName: filepath.Join(outDir, PrefStringsFileName), Contents: []byte(tableBuf.String())},
	}
}

func generateRun(cmd *cobra.Command, args []string) error {
	entries, err := prefschema.ReadFile(schemaFlag)
	if err != nil {
		return err
	}
	files := generateFiles(entries, outDirFlag)
	if checkFlag {
		return checkFiles(files)
	}
	for _, file := range files {
		fmt.Fprintf(os.Stderr, "generating %s (%d prefs)\n", file.FileName, len(entries))
		written, err := utilfn.WriteFileIfDifferent(file.FileName, file.Contents)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", file.FileName, err)
		}
		if !written {
			fmt.Fprintf(os.Stderr, "no changes to %s\n", file.FileName)
		}
	}
	return nil
}

func checkFiles(files []genFile) error {
	var stale []string
	for _, file := range files {
		ok, err := utilfn.FileMatches(file.FileName, file.Contents)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file.FileName, err)
		}
		if !ok {
			stale = append(stale, file.FileName)
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("generated files out of date with %s: %s", schemaFlag, strings.Join(stale, ", "))
	}
	fmt.Fprintf(os.Stderr, "generated files are up to date with %s\n", schemaFlag)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		os.Exit(1)
	}
}

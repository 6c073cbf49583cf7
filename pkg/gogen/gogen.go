// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package gogen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wavetermdev/prefstrings/pkg/prefschema"
)

func GenerateBoilerplate(buf *strings.Builder, pkgName string, imports []string) {
	buf.WriteString("// Copyright 2025, Command Line Inc.\n")
	buf.WriteString("// SPDX-License-Identifier: Apache-2.0\n")
	buf.WriteString("\n// Generated Code. DO NOT EDIT.\n\n")
	buf.WriteString(fmt.Sprintf("package %s\n\n", pkgName))
	if len(imports) > 0 {
		buf.WriteString("import (\n")
		for _, imp := range imports {
			buf.WriteString(fmt.Sprintf("\t%q\n", imp))
		}
		buf.WriteString(")\n\n")
	}
}

// ExportedName upper-cases the first rune of a schema key ("zoteroApiKey" -> "ZoteroApiKey").
func ExportedName(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}
	return string(unicode.ToUpper(r)) + key[size:]
}

func KeyConstName(constPrefix string, key string) string {
	return constPrefix + ExportedName(key)
}

func GeneratePrefKeyConsts(buf *strings.Builder, constPrefix string, entries []prefschema.Entry) {
	width := 0
	for _, entry := range entries {
		if l := len(KeyConstName(constPrefix, entry.Key)); l > width {
			width = l
		}
	}
	buf.WriteString("const (\n")
	for _, entry := range entries {
		buf.WriteString(fmt.Sprintf("\t%-*s = %q\n", width, KeyConstName(constPrefix, entry.Key), entry.Key))
	}
	buf.WriteString(")\n")
}

// GeneratePrefStringTable writes a slice literal of typeName with one element
// per schema entry. Titles the schema omits are written as "".
func GeneratePrefStringTable(buf *strings.Builder, varName string, typeName string, constPrefix string, entries []prefschema.Entry) {
	buf.WriteString(fmt.Sprintf("var %s = []%s{\n", varName, typeName))
	for _, entry := range entries {
		buf.WriteString("\t{\n")
		buf.WriteString(fmt.Sprintf("\t\t%-13s%s,\n", "Key:", KeyConstName(constPrefix, entry.Key)))
		buf.WriteString(fmt.Sprintf("\t\t%-13s%q,\n", "Title:", entry.Title))
		buf.WriteString(fmt.Sprintf("\t\t%-13s%q,\n", "Description:", entry.Description))
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")
}

// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Generated Code. DO NOT EDIT.

package prefstrings

const (
	PrefKey_ContextId                     = "contextId"
	PrefKey_AutoCreatedProfile            = "autoCreatedProfile"
	PrefKey_Theme                         = "theme"
	PrefKey_DefaultProjectLocation        = "defaultProjectLocation"
	PrefKey_ClearHidden                   = "clearHidden"
	PrefKey_ExportPlotOptions             = "exportPlotOptions"
	PrefKey_ExportViewerOptions           = "exportViewerOptions"
	PrefKey_SavePlotAsPdfOptions          = "savePlotAsPdfOptions"
	PrefKey_CompileRNotebookPrefs         = "compileRNotebookPrefs"
	PrefKey_CompileRMarkdownNotebookPrefs = "compileRMarkdownNotebookPrefs"
	PrefKey_ShowPublishUi                 = "showPublishUi"
	PrefKey_EnableRsconnectPublishUi      = "enableRsconnectPublishUi"
	PrefKey_PublishAccount                = "publishAccount"
	PrefKey_DocumentOutlineWidth          = "documentOutlineWidth"
	PrefKey_ConnectVia                    = "connectVia"
	PrefKey_ErrorHandlerType              = "errorHandlerType"
	PrefKey_UsingMingwGcc49               = "usingMingwGcc49"
	PrefKey_VisualModeConfirmed           = "visualModeConfirmed"
	PrefKey_BibliographyDefaultType       = "bibliographyDefaultType"
	PrefKey_CitationDefaultInText         = "citationDefaultInText"
	PrefKey_ZoteroConnectionType          = "zoteroConnectionType"
	PrefKey_ZoteroUseBetterBibtex         = "zoteroUseBetterBibtex"
	PrefKey_ZoteroApiKey                  = "zoteroApiKey"
	PrefKey_ZoteroDataDir                 = "zoteroDataDir"
	PrefKey_QuartoWebsiteSyncEditor       = "quartoWebsiteSyncEditor"
	PrefKey_QuartoBuildEditorTools        = "quartoBuildEditorTools"
)

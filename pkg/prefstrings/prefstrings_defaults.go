// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Generated Code. DO NOT EDIT.

package prefstrings

var defaultEntries = []Entry{
	{
		Key:         PrefKey_ContextId,
		Title:       "",
		Description: "A unique identifier representing the user and machine.",
	},
	{
		Key:         PrefKey_AutoCreatedProfile,
		Title:       "",
		Description: "Whether we have automatically created an .Rprofile for this user.",
	},
	{
		Key:         PrefKey_Theme,
		Title:       "",
		Description: "The color theme to apply.",
	},
	{
		Key:         PrefKey_DefaultProjectLocation,
		Title:       "",
		Description: "The directory path under which to place new projects by default. Shadows a uipref.",
	},
	{
		Key:         PrefKey_ClearHidden,
		Title:       "",
		Description: "Whether to clear hidden objects along with visible objects when clearing the workspace. Set automatically to remember last action.",
	},
	{
		Key:         PrefKey_ExportPlotOptions,
		Title:       "",
		Description: "The most recently used plot export options.",
	},
	{
		Key:         PrefKey_ExportViewerOptions,
		Title:       "",
		Description: "The most recently used viewer export options.",
	},
	{
		Key:         PrefKey_SavePlotAsPdfOptions,
		Title:       "",
		Description: "The most recently used options for saving a plot as a PDF.",
	},
	{
		Key:         PrefKey_CompileRNotebookPrefs,
		Title:       "",
		Description: "Most recently used settings for compiling a notebook from an R script.",
	},
	{
		Key:         PrefKey_CompileRMarkdownNotebookPrefs,
		Title:       "",
		Description: "Most recently used settings for compiling a notebook using R Markdown.",
	},
	{
		Key:         PrefKey_ShowPublishUi,
		Title:       "",
		Description: "Whether to show UI for publishing content.",
	},
	{
		Key:         PrefKey_EnableRsconnectPublishUi,
		Title:       "",
		Description: "Whether to show UI for publishing content to RStudio Connect.",
	},
	{
		Key:         PrefKey_PublishAccount,
		Title:       "",
		Description: "The default (last) account used for publishing",
	},
	{
		Key:         PrefKey_DocumentOutlineWidth,
		Title:       "",
		Description: "The preferred width, in pixels, of the document outline pane.",
	},
	{
		Key:         PrefKey_ConnectVia,
		Title:       "",
		Description: "How to create new connections to data sources.",
	},
	{
		Key:         PrefKey_ErrorHandlerType,
		Title:       "",
		Description: "The kind of handler to invoke when errors occur.",
	},
	{
		Key:         PrefKey_UsingMingwGcc49,
		Title:       "",
		Description: "Whether or not the MinGW compiler with GCC 4.9 is used.",
	},
	{
		Key:         PrefKey_VisualModeConfirmed,
		Title:       "",
		Description: "Whether or not the use of Visual Mode has been confirmed.",
	},
	{
		Key:         PrefKey_BibliographyDefaultType,
		Title:       "",
		Description: "The default type for new bibliographies.",
	},
	{
		Key:         PrefKey_CitationDefaultInText,
		Title:       "",
		Description: "The default style for inserting citations.",
	},
	{
		Key:         PrefKey_ZoteroConnectionType,
		Title:       "Zotero connection type",
		Description: "Zotero connection type (local or web)",
	},
	{
		Key:         PrefKey_ZoteroUseBetterBibtex,
		Title:       "Use Better BibTeX for citation keys and BibTeX export",
		Description: "Whether to use Better BibTeX when suggesting citation keys and writing citations to BibTeX bibliographies",
	},
	{
		Key:         PrefKey_ZoteroApiKey,
		Title:       "Zotero API Key",
		Description: "Key for making Zotero API calls",
	},
	{
		Key:         PrefKey_ZoteroDataDir,
		Title:       "Zotero Data Directory",
		Description: "Directory containing Zotero data files",
	},
	{
		Key:         PrefKey_QuartoWebsiteSyncEditor,
		Title:       "Quarto Website Sync Editor",
		Description: "Sync source editor to Quarto website preview navigation.",
	},
	{
		Key:         PrefKey_QuartoBuildEditorTools,
		Title:       "Build Quarto Editor Tools",
		Description: "Build Quarto editor tools (yaml.js) on the fly when requested.",
	},
}

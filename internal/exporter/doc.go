// Package exporter writes the analysis results to their output surfaces.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers and
// UTF-8 BOM for Excel compatibility; the typed report writers build on it.
//
// ConsolePrinter: Renders the analyzer's descriptive statistics as text
// tables on standard output.
//
// MenuWorkbook: Builds the per-menu price evolution XLSX workbooks, one
// file per menu group with three fixed sheets.
package exporter

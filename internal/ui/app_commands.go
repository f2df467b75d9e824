package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"atrisure/internal/docintel"
	"atrisure/internal/export"
	"atrisure/internal/prospect"

	tea "github.com/charmbracelet/bubbletea"
)

// readCSVCmd reads a CSV file off the UI loop. Parsing and appending happen
// in Update so the registry is only touched there.
func readCSVCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(export.ExpandHome(path))
		if err != nil {
			return CSVFileReadMsg{Path: path, Err: fmt.Errorf("read %s: %w", path, err)}
		}
		return CSVFileReadMsg{Path: path, Data: data}
	}
}

// summarizeCmd runs the simulated OCR over a local text file.
func summarizeCmd(ctx context.Context, path string) tea.Cmd {
	return func() tea.Msg {
		summary, err := docintel.SummarizeFile(ctx, export.ExpandHome(path))
		return OCRDoneMsg{Path: path, Summary: summary, Err: err}
	}
}

// exportCmd writes a snapshot of the grid to the export store. The snapshot
// is taken by the caller on the UI loop; the command never sees the live
// registry.
func exportCmd(ctx context.Context, store *export.Store, moduleID string, snapshot []prospect.Prospect) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return ExportDoneMsg{Err: fmt.Errorf("export: no export directory configured")}
		}
		path, err := store.Write(ctx, prospect.ExportFilename(moduleID), func(w io.Writer) error {
			return prospect.ExportRecords(ctx, w, snapshot)
		})
		return ExportDoneMsg{Path: path, Rows: len(snapshot), Err: err}
	}
}

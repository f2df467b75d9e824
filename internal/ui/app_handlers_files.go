package ui

import (
	"bytes"
	"fmt"
	"path/filepath"

	"atrisure/internal/prospect"

	tea "github.com/charmbracelet/bubbletea"
)

// handleImportPath closes the prompt and reads the CSV off the UI loop.
func (a *appModelAdapter) handleImportPath(msg ImportPathMsg) tea.Cmd {
	a.popOverlay()
	a.setStatus("Importing "+filepath.Base(msg.Path)+"…", false)
	return readCSVCmd(msg.Path)
}

// handleCSVFileRead parses the file contents and appends the rows.
func (a *appModelAdapter) handleCSVFileRead(msg CSVFileReadMsg) tea.Cmd {
	if msg.Err != nil {
		a.setStatus(fmt.Sprintf("Import: %v", msg.Err), true)
		return nil
	}
	added, err := a.Prospects.ImportCSV(a.ctx, bytes.NewReader(msg.Data))
	if err != nil {
		a.setStatus(fmt.Sprintf("Import %s: %v", filepath.Base(msg.Path), err), true)
		return nil
	}
	a.setStatus(fmt.Sprintf("Imported %d prospect(s) from %s", len(added), filepath.Base(msg.Path)), false)
	return nil
}

// handleOCRPath closes the prompt and summarizes the document off the UI loop.
func (a *appModelAdapter) handleOCRPath(msg OCRPathMsg) tea.Cmd {
	a.popOverlay()
	a.setStatus("Reading "+filepath.Base(msg.Path)+"…", false)
	return summarizeCmd(a.ctx, msg.Path)
}

// handleOCRDone shows the summary in the document intelligence card.
func (a *appModelAdapter) handleOCRDone(msg OCRDoneMsg) tea.Cmd {
	if msg.Err != nil {
		a.setStatus(fmt.Sprintf("OCR: %v", msg.Err), true)
		return nil
	}
	a.Workspace.OCRSummary = msg.Summary
	a.setStatus("Summarized "+filepath.Base(msg.Path), false)
	return nil
}

// handleExport snapshots the grid and writes it out as CSV.
func (a *appModelAdapter) handleExport() tea.Cmd {
	moduleID := a.Sidebar.ActiveModule().ID
	a.setStatus("Exporting "+prospect.ExportFilename(moduleID)+"…", false)
	return exportCmd(a.ctx, a.Exports, moduleID, a.Prospects.All())
}

// handleExportDone reports where the export landed.
func (a *appModelAdapter) handleExportDone(msg ExportDoneMsg) tea.Cmd {
	if msg.Err != nil {
		a.setStatus(fmt.Sprintf("Export: %v", msg.Err), true)
		return nil
	}
	a.Workspace.LastExport = msg.Path
	a.Logger.Info("prospects exported", "path", msg.Path, "rows", msg.Rows)
	a.setStatus(fmt.Sprintf("Exported %d row(s) to %s", msg.Rows, msg.Path), false)
	return nil
}

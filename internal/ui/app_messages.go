package ui

import (
	"atrisure/internal/prospect"
)

// SelectModuleMsg activates a catalog module in the workspace.
type SelectModuleMsg struct {
	ID string
}

// NavigateMsg jumps to a module from the assistant panel and clears the
// sidebar search so the module is visible.
type NavigateMsg struct {
	ID string
}

// RecommendationMsg navigates to the nth assistant recommendation (0-based,
// SPC g 1..3).
type RecommendationMsg struct {
	Index int
}

// ShowStudioMsg opens the no-code studio (SPC n).
type ShowStudioMsg struct{}

// ShowModuleSwitcherMsg opens the fuzzy module jump list (SPC s).
type ShowModuleSwitcherMsg struct{}

// ShowImportPromptMsg asks for a CSV path to import (SPC i).
type ShowImportPromptMsg struct{}

// ShowOCRPromptMsg asks for a document path to summarize (SPC o).
type ShowOCRPromptMsg struct{}

// ExportMsg writes the prospect grid to the export directory (SPC e).
type ExportMsg struct{}

// MergeDuplicatesMsg resolves the duplicate alerts for the most recent
// intake (SPC m).
type MergeDuplicatesMsg struct{}

// ShowDeleteProspectMsg asks for confirmation before deleting the selected
// prospect (SPC p d).
type ShowDeleteProspectMsg struct{}

// DeleteProspectMsg deletes a prospect after confirmation.
type DeleteProspectMsg struct {
	ID string
}

// CreateProspectMsg is sent by the workspace intake form on submit.
type CreateProspectMsg struct {
	Draft prospect.Draft
}

// ImportPathMsg is sent by the path prompt with the CSV to import.
type ImportPathMsg struct {
	Path string
}

// OCRPathMsg is sent by the path prompt with the document to summarize.
type OCRPathMsg struct {
	Path string
}

// CSVFileReadMsg carries the bytes of a CSV file read off the UI loop.
type CSVFileReadMsg struct {
	Path string
	Data []byte
	Err  error
}

// OCRDoneMsg carries a finished document summary.
type OCRDoneMsg struct {
	Path    string
	Summary string
	Err     error
}

// ExportDoneMsg reports where the grid export landed.
type ExportDoneMsg struct {
	Path string
	Rows int
	Err  error
}

// DismissModalMsg closes the top overlay.
type DismissModalMsg struct{}

// AskMsg submits a question to the concierge.
type AskMsg struct {
	Query string
}

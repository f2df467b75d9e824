package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// handleSelectModule activates a module picked in the sidebar or switcher.
func (a *appModelAdapter) handleSelectModule(msg SelectModuleMsg) tea.Cmd {
	if top, ok := a.Overlays.Peek(); ok {
		if _, switcher := top.View.(*ModuleSwitcherModal); switcher {
			a.popOverlay()
			// The switcher ignores the sidebar search; clear it so the pick is visible.
			a.Sidebar.SetTerm("")
		}
	}
	m, ok := a.Catalog.Get(msg.ID)
	if !ok {
		return nil
	}
	a.Sidebar.Active = m.ID
	a.Focus.SetFocus(PanelWorkspace)
	a.Logger.Debug("module selected", "module", m.ID)
	return nil
}

// handleNavigate jumps to a module from the assistant, clearing the search.
func (a *appModelAdapter) handleNavigate(msg NavigateMsg) tea.Cmd {
	m, ok := a.Catalog.Get(msg.ID)
	if !ok {
		return nil
	}
	a.Sidebar.SetTerm("")
	a.Sidebar.Active = m.ID
	a.setStatus("Opened "+m.Name, false)
	return nil
}

// handleRecommendation navigates to one of the assistant's suggested modules.
func (a *appModelAdapter) handleRecommendation(msg RecommendationMsg) tea.Cmd {
	recs := a.Assistant.Recommendations
	if msg.Index < 0 || msg.Index >= len(recs) {
		return nil
	}
	return a.handleNavigate(NavigateMsg{ID: recs[msg.Index].ID})
}

// handleAsk answers a concierge question against the visible modules.
func (a *appModelAdapter) handleAsk(msg AskMsg) tea.Cmd {
	if _, ok := a.Conversation.Ask(msg.Query, a.Sidebar.Filtered()); ok {
		a.Logger.Debug("assistant replied", "messages", a.Conversation.Len())
	}
	return nil
}

// handleCreateProspect adds the intake form's draft to the registry.
func (a *appModelAdapter) handleCreateProspect(msg CreateProspectMsg) tea.Cmd {
	p, ok := a.Prospects.Create(msg.Draft)
	if !ok {
		a.setStatus("Organization name is required", true)
		return nil
	}
	a.lastIntake = p.Name
	a.Workspace.SyncCursor()
	if dups := a.Prospects.DuplicateAlerts(); len(dups) > 0 {
		a.setStatus(fmt.Sprintf("Created %s; %d potential duplicate(s)", p.ID, len(dups)), false)
	} else {
		a.setStatus("Created "+p.ID, false)
	}
	return a.Workspace.ResetForm()
}

// handleShowDeleteProspect confirms deleting the selected prospect, falling
// back to the grid row under the cursor.
func (a *appModelAdapter) handleShowDeleteProspect() tea.Cmd {
	p, ok := a.Prospects.Selected()
	if !ok {
		p, ok = a.Workspace.CursorProspect()
	}
	if !ok {
		a.setStatus("No prospect selected", true)
		return nil
	}
	return a.pushOverlay(NewDeleteProspectConfirmModal(p))
}

// handleDeleteProspect removes a prospect after confirmation.
func (a *appModelAdapter) handleDeleteProspect(msg DeleteProspectMsg) tea.Cmd {
	a.popOverlay()
	if !a.Prospects.Delete(msg.ID) {
		a.setStatus("Prospect "+msg.ID+" not found", true)
		return nil
	}
	a.Workspace.SyncCursor()
	a.setStatus("Deleted "+msg.ID, false)
	return nil
}

// handleMergeDuplicates renames the flagged records to the latest intake name.
func (a *appModelAdapter) handleMergeDuplicates() tea.Cmd {
	flagged := len(a.Prospects.DuplicateAlerts())
	if flagged == 0 {
		a.setStatus("No duplicates to merge", false)
		return nil
	}
	renamed := a.Prospects.MergeDuplicates(a.lastIntake)
	a.setStatus(fmt.Sprintf("Merged %d duplicate(s) into %q", renamed, a.lastIntake), false)
	return nil
}

// handleShowStudio opens the no-code studio over the session canvas.
func (a *appModelAdapter) handleShowStudio() tea.Cmd {
	if top, ok := a.Overlays.Peek(); ok {
		if _, open := top.View.(*StudioModal); open {
			return nil
		}
	}
	a.Mode = ModeStudio
	return a.pushOverlay(NewStudioModal(a.Canvas))
}

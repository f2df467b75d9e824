package ui

import (
	"context"
	"log/slog"

	"atrisure/internal/assistant"
	"atrisure/internal/catalog"
	"atrisure/internal/export"
	"atrisure/internal/prospect"
	"atrisure/internal/studio"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth   = 34
	assistantWidth = 44
	recommendCount = 3
)

// Options configures NewAppModel.
type Options struct {
	Catalog       *catalog.Catalog
	Exports       *export.Store
	DefaultModule string
	Prospects     []prospect.Prospect // nil seeds the demo records
	Logger        *slog.Logger
}

// AppModel is the root model: sidebar, workspace and assistant panels with
// modal overlays on top.
type AppModel struct {
	Mode         AppMode
	Catalog      *catalog.Catalog
	Prospects    *prospect.Registry
	Canvas       *studio.Canvas
	Conversation *assistant.Conversation
	Exports      *export.Store

	Sidebar    *SidebarView
	Workspace  *WorkspaceView
	Assistant  *AssistantView
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Overlays   OverlayStack

	Status        string
	StatusIsError bool

	Logger *slog.Logger

	ctx        context.Context
	lastIntake string // name of the most recent intake, used by merge
	width      int
	height     int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	seed := opts.Prospects
	if seed == nil {
		seed = prospect.Seed()
	}
	reg := prospect.NewRegistry(seed)
	reg.SetLogger(logger.With("component", "prospect"))

	conv := assistant.NewConversation()
	a := &AppModel{
		Mode:         ModeDashboard,
		Catalog:      opts.Catalog,
		Prospects:    reg,
		Canvas:       studio.NewCanvas(nil),
		Conversation: conv,
		Exports:      opts.Exports,
		Sidebar:      NewSidebarView(opts.Catalog, opts.Catalog.Resolve(opts.DefaultModule).ID),
		Assistant:    NewAssistantView(conv),
		Focus:        NewFocusManager(PanelSidebar, PanelWorkspace, PanelAssistant),
		KeyHandler:   NewKeyHandler(NewDefaultKeybindRegistry()),
		Logger:       logger,
		ctx:          context.Background(),
		width:        160,
		height:       48,
	}
	a.Workspace = NewWorkspaceView(reg, a.Sidebar.ActiveModule())
	a.Focus.OnChange = func(from, to string) {
		a.Logger.Debug("focus changed", "from", from, "to", to)
	}
	a.sync()
	a.layout()
	return a
}

// NewDefaultKeybindRegistry binds the dashboard's leader commands.
func NewDefaultKeybindRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	msg := func(m tea.Msg) tea.Cmd { return func() tea.Msg { return m } }
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC n", msg(ShowStudioMsg{}), "No-code studio")
	reg.BindWithDesc("SPC s", msg(ShowModuleSwitcherMsg{}), "Switch module")
	reg.BindWithDesc("SPC e", msg(ExportMsg{}), "Export CSV")
	reg.BindWithDesc("SPC i", msg(ShowImportPromptMsg{}), "Import CSV")
	reg.BindWithDesc("SPC o", msg(ShowOCRPromptMsg{}), "OCR document")
	reg.BindWithDesc("SPC m", msg(MergeDuplicatesMsg{}), "Merge duplicates")
	reg.BindWithDesc("SPC p d", msg(ShowDeleteProspectMsg{}), "Delete prospect")
	reg.BindWithDesc("SPC p m", msg(MergeDuplicatesMsg{}), "Merge duplicates")
	reg.BindWithDesc("SPC g 1", msg(RecommendationMsg{Index: 0}), "Suggestion 1")
	reg.BindWithDesc("SPC g 2", msg(RecommendationMsg{Index: 1}), "Suggestion 2")
	reg.BindWithDesc("SPC g 3", msg(RecommendationMsg{Index: 2}), "Suggestion 3")
	reg.BindWithDesc("SPC g k", msg(NavigateMsg{ID: "knowledge-companion"}), "Knowledge Companion")
	reg.BindWithDesc("SPC g a", msg(NavigateMsg{ID: "analytics-pulse"}), "Analytics Pulse")
	reg.Submenu("SPC p", "Prospect")
	reg.Submenu("SPC g", "Go to")
	return reg
}

// WithContext sets the context passed to file commands (and their spans).
func (a *AppModel) WithContext(ctx context.Context) *AppModel {
	a.ctx = ctx
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.sync()
	return a, cmd
}

func (a *appModelAdapter) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
		return nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case SelectModuleMsg:
		return a.handleSelectModule(msg)
	case NavigateMsg:
		return a.handleNavigate(msg)
	case RecommendationMsg:
		return a.handleRecommendation(msg)
	case AskMsg:
		return a.handleAsk(msg)
	case CreateProspectMsg:
		return a.handleCreateProspect(msg)
	case ShowDeleteProspectMsg:
		return a.handleShowDeleteProspect()
	case DeleteProspectMsg:
		return a.handleDeleteProspect(msg)
	case MergeDuplicatesMsg:
		return a.handleMergeDuplicates()
	case ShowImportPromptMsg:
		return a.pushOverlay(NewImportPromptModal())
	case ShowOCRPromptMsg:
		return a.pushOverlay(NewOCRPromptModal())
	case ImportPathMsg:
		return a.handleImportPath(msg)
	case CSVFileReadMsg:
		return a.handleCSVFileRead(msg)
	case OCRPathMsg:
		return a.handleOCRPath(msg)
	case OCRDoneMsg:
		return a.handleOCRDone(msg)
	case ExportMsg:
		return a.handleExport()
	case ExportDoneMsg:
		return a.handleExportDone(msg)
	case ShowModuleSwitcherMsg:
		return a.pushOverlay(NewModuleSwitcherModal(a.Catalog.Modules(), a.Sidebar.ActiveModule().ID))
	case ShowStudioMsg:
		return a.handleShowStudio()
	case DismissModalMsg:
		a.popOverlay()
		return nil
	}
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return cmd
	}
	return nil
}

// handleKey routes a key: ctrl+c always quits, an open overlay takes
// everything else, then a panel that is capturing text, then keybindings,
// then the focused panel.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(s) {
			a.popOverlay()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}
	if e, ok := a.focusedView().(editor); ok && e.Editing() {
		return a.updateFocused(msg)
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return cmd
		}
	}
	switch s {
	case "tab":
		a.Focus.Next()
		return nil
	case "shift+tab":
		a.Focus.Prev()
		return nil
	}
	return a.updateFocused(msg)
}

func (a *AppModel) focusedView() View {
	switch a.Focus.Current {
	case PanelWorkspace:
		return a.Workspace
	case PanelAssistant:
		return a.Assistant
	default:
		return a.Sidebar
	}
}

// updateFocused forwards msg to the focused panel. Panels return themselves.
func (a *AppModel) updateFocused(msg tea.Msg) tea.Cmd {
	_, cmd := a.focusedView().Update(msg)
	return cmd
}

func (a *AppModel) pushOverlay(v View) tea.Cmd {
	if a.KeyHandler != nil {
		a.KeyHandler.Reset()
	}
	if s, ok := v.(*StudioModal); ok {
		s.SetWidth(a.studioWidth())
	}
	a.Overlays.Push(Overlay{View: v, Dismiss: "esc"})
	return v.Init()
}

func (a *AppModel) popOverlay() {
	top, ok := a.Overlays.Pop()
	if !ok {
		return
	}
	if _, isStudio := top.View.(*StudioModal); isStudio {
		a.Mode = ModeDashboard
	}
}

// sync pushes derived state into the panels after every update.
func (a *AppModel) sync() {
	a.Workspace.Module = a.Sidebar.ActiveModule()
	a.Assistant.Recommendations = catalog.Recommendations(a.Sidebar.Filtered(), recommendCount)
	a.Sidebar.Focused = a.Focus.Is(PanelSidebar)
	a.Workspace.Focused = a.Focus.Is(PanelWorkspace)
	a.Assistant.Focused = a.Focus.Is(PanelAssistant)
}

func (a *AppModel) layout() {
	if top, ok := a.Overlays.Peek(); ok {
		if s, isStudio := top.View.(*StudioModal); isStudio {
			s.SetWidth(a.studioWidth())
		}
	}
	a.Sidebar.SetWidth(sidebarWidth)
	a.Assistant.SetWidth(assistantWidth)
	a.Workspace.SetWidth(max(40, a.width-sidebarWidth-assistantWidth-6))
}

func (a *AppModel) studioWidth() int {
	return a.width - 8
}

func (a *AppModel) setStatus(msg string, isErr bool) {
	a.Status = msg
	a.StatusIsError = isErr
	if isErr {
		a.Logger.Warn("status", "msg", msg)
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}

	panel := func(id string, width int, body string) string {
		style := Styles.Panel
		if a.Focus.Is(id) {
			style = Styles.PanelFocused
		}
		return style.Width(width).Height(max(10, a.height-6)).Render(body)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panel(PanelSidebar, sidebarWidth, a.Sidebar.View()),
		panel(PanelWorkspace, a.Workspace.width, a.Workspace.View()),
		panel(PanelAssistant, assistantWidth, a.Assistant.View()),
	)
	out := a.renderHeader() + "\n" + body + "\n" + a.renderStatusLine()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		out += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return out
}

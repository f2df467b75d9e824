package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"atrisure/internal/catalog"
	"atrisure/internal/export"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*AppModel, *appModelAdapter) {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	store, err := export.NewStore(t.TempDir())
	require.NoError(t, err)
	a := NewAppModel(Options{Catalog: cat, Exports: store, DefaultModule: catalog.DefaultModuleID})
	return a, &appModelAdapter{AppModel: a}
}

// send delivers msg and returns the resulting command.
func send(ad *appModelAdapter, msg tea.Msg) tea.Cmd {
	_, cmd := ad.Update(msg)
	return cmd
}

// press delivers each key in order and returns the last command.
func press(ad *appModelAdapter, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = send(ad, keyMsg(k))
	}
	return cmd
}

// follow runs cmd, feeds its message back into the app and returns the
// message for inspection.
func follow(t *testing.T, ad *appModelAdapter, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	send(ad, msg)
	return msg
}

func TestNewAppModel_Defaults(t *testing.T) {
	a, _ := newTestApp(t)

	assert.Equal(t, catalog.DefaultModuleID, a.Workspace.Module.ID)
	assert.Equal(t, 4, a.Prospects.Len())
	assert.Equal(t, PanelSidebar, a.Focus.Current)
	assert.Len(t, a.Assistant.Recommendations, 3)
	assert.Equal(t, ModeDashboard, a.Mode)
}

func TestNewAppModel_UnknownDefaultModuleFallsBack(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	a := NewAppModel(Options{Catalog: cat, DefaultModule: "no-such-module"})
	assert.Equal(t, catalog.DefaultModuleID, a.Workspace.Module.ID)
}

func TestFocusRotation(t *testing.T) {
	a, ad := newTestApp(t)

	press(ad, "tab")
	assert.Equal(t, PanelWorkspace, a.Focus.Current)
	assert.True(t, a.Workspace.Focused)
	press(ad, "tab")
	assert.Equal(t, PanelAssistant, a.Focus.Current)
	press(ad, "tab")
	assert.Equal(t, PanelSidebar, a.Focus.Current)
	press(ad, "shift+tab")
	assert.Equal(t, PanelAssistant, a.Focus.Current)
	assert.False(t, a.Sidebar.Focused)
}

func TestSidebarSearch_FollowsFirstVisibleModule(t *testing.T) {
	a, ad := newTestApp(t)

	press(ad, "/")
	require.True(t, a.Sidebar.Editing())
	press(ad, "analytics pulse")

	require.NotEmpty(t, a.Sidebar.Filtered())
	assert.Equal(t, "analytics-pulse", a.Sidebar.Filtered()[0].ID)
	assert.Equal(t, "analytics-pulse", a.Workspace.Module.ID)

	press(ad, "esc")
	assert.False(t, a.Sidebar.Editing())
	assert.Equal(t, "analytics pulse", a.Sidebar.Term())
}

func TestSidebarSearch_NoMatchKeepsActive(t *testing.T) {
	a, ad := newTestApp(t)
	send(ad, SelectModuleMsg{ID: "claims-harbor"})
	a.Focus.SetFocus(PanelSidebar)

	press(ad, "/", "zzzz")
	assert.Empty(t, a.Sidebar.Filtered())
	assert.Equal(t, "claims-harbor", a.Workspace.Module.ID)
	assert.Empty(t, a.Assistant.Recommendations)
}

func TestSelectModuleMsg(t *testing.T) {
	a, ad := newTestApp(t)

	send(ad, SelectModuleMsg{ID: "analytics-pulse"})
	assert.Equal(t, "analytics-pulse", a.Workspace.Module.ID)
	assert.Equal(t, PanelWorkspace, a.Focus.Current)

	send(ad, SelectModuleMsg{ID: "nope"})
	assert.Equal(t, "analytics-pulse", a.Workspace.Module.ID)
}

func TestSidebarEnter_SelectsModule(t *testing.T) {
	a, ad := newTestApp(t)

	cmd := press(ad, "j", "enter")
	msg := follow(t, ad, cmd)
	assert.Equal(t, SelectModuleMsg{ID: "policy-forge"}, msg)
	assert.Equal(t, "policy-forge", a.Workspace.Module.ID)
}

func TestNavigate_ClearsSearch(t *testing.T) {
	a, ad := newTestApp(t)
	a.Sidebar.SetTerm("claims")

	send(ad, NavigateMsg{ID: "knowledge-companion"})
	assert.Equal(t, "", a.Sidebar.Term())
	assert.Equal(t, "knowledge-companion", a.Workspace.Module.ID)
}

func TestRecommendationMsg(t *testing.T) {
	a, ad := newTestApp(t)
	want := a.Catalog.Modules()[1].ID

	send(ad, RecommendationMsg{Index: 1})
	assert.Equal(t, want, a.Workspace.Module.ID)

	send(ad, RecommendationMsg{Index: 7})
	assert.Equal(t, want, a.Workspace.Module.ID)
}

func TestLeaderOpensAndClosesStudio(t *testing.T) {
	a, ad := newTestApp(t)

	cmd := press(ad, " ", "n")
	follow(t, ad, cmd)
	require.Equal(t, 1, a.Overlays.Len())
	top, _ := a.Overlays.Peek()
	_, ok := top.View.(*StudioModal)
	require.True(t, ok, "expected StudioModal, got %T", top.View)
	assert.Equal(t, ModeStudio, a.Mode)

	press(ad, "esc")
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, ModeDashboard, a.Mode)
}

func TestStudio_CanvasSurvivesReopen(t *testing.T) {
	a, ad := newTestApp(t)

	send(ad, ShowStudioMsg{})
	press(ad, "enter")
	require.Equal(t, 1, a.Canvas.Len())
	press(ad, "esc")

	send(ad, ShowStudioMsg{})
	top, _ := a.Overlays.Peek()
	studioModal := top.View.(*StudioModal)
	assert.Equal(t, 1, studioModal.Canvas.Len())
	assert.Equal(t, "widget-metric-1", a.Canvas.SelectedUID())

	// A second open request does not stack another studio.
	send(ad, ShowStudioMsg{})
	assert.Equal(t, 1, a.Overlays.Len())
}

func TestCreateProspect_FlagsDuplicatesThenMerge(t *testing.T) {
	a, ad := newTestApp(t)
	a.Focus.SetFocus(PanelWorkspace)

	press(ad, "n")
	require.True(t, a.Workspace.Editing())
	press(ad, "Arcadia", "tab", "ops@arcadia.com", "tab", "52000")
	cmd := press(ad, "enter")
	msg := follow(t, ad, cmd)

	create, ok := msg.(CreateProspectMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, float64(52000), create.Draft.Premium)
	assert.Equal(t, 5, a.Prospects.Len())
	assert.Equal(t, []string{"CL-1001"}, a.Prospects.DuplicateAlerts())
	assert.Contains(t, a.Status, "CL-1005")
	assert.False(t, a.StatusIsError)
	assert.Equal(t, "", a.Workspace.form.name(), "form resets after create")

	press(ad, "esc")
	cmd = press(ad, " ", "m")
	follow(t, ad, cmd)

	merged, _ := a.Prospects.Get("CL-1001")
	assert.Equal(t, "Arcadia", merged.Name)
	assert.Equal(t, 1, a.Prospects.DuplicatesResolved())
	assert.Empty(t, a.Prospects.DuplicateAlerts())
}

func TestMergeWithoutDuplicates(t *testing.T) {
	a, ad := newTestApp(t)
	send(ad, MergeDuplicatesMsg{})
	assert.Equal(t, "No duplicates to merge", a.Status)
	assert.Equal(t, 0, a.Prospects.DuplicatesResolved())
}

func TestCreateProspect_BlankNameDoesNothing(t *testing.T) {
	a, ad := newTestApp(t)
	a.Focus.SetFocus(PanelWorkspace)

	press(ad, "n", "tab", "x@y.z")
	cmd := press(ad, "enter")
	assert.Nil(t, cmd)
	assert.Equal(t, 4, a.Prospects.Len())
}

func TestSpaceWhileEditingIsText(t *testing.T) {
	a, ad := newTestApp(t)
	a.Focus.SetFocus(PanelWorkspace)

	press(ad, "n", " ")
	assert.False(t, a.KeyHandler.LeaderWaiting)
	assert.Equal(t, 0, a.Overlays.Len())
}

func TestDeleteProspect_ConfirmAndCancel(t *testing.T) {
	a, ad := newTestApp(t)
	a.Prospects.Select("CL-1002")

	send(ad, ShowDeleteProspectMsg{})
	require.Equal(t, 1, a.Overlays.Len())
	press(ad, "esc")
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, 4, a.Prospects.Len())

	send(ad, ShowDeleteProspectMsg{})
	top, _ := a.Overlays.Peek()
	_, ok := top.View.(*ConfirmModal)
	require.True(t, ok, "expected ConfirmModal, got %T", top.View)

	follow(t, ad, press(ad, "y"))
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, 3, a.Prospects.Len())
	_, found := a.Prospects.Get("CL-1002")
	assert.False(t, found)
	_, selected := a.Prospects.Selected()
	assert.False(t, selected)
}

func TestImportCSV_EndToEnd(t *testing.T) {
	a, ad := newTestApp(t)
	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,email,premium,status\nAcme,acme@x.com,1000,Won\nNoEmail,,5\n"), 0o644))

	follow(t, ad, press(ad, " ", "i"))
	require.Equal(t, 1, a.Overlays.Len())
	press(ad, path)

	msg := follow(t, ad, press(ad, "enter"))
	assert.Equal(t, ImportPathMsg{Path: path}, msg)
	assert.Equal(t, 0, a.Overlays.Len())

	// The returned command reads the file; apply it.
	follow(t, ad, send(ad, msg))
	assert.False(t, a.StatusIsError, a.Status)
	assert.Equal(t, 5, a.Prospects.Len())
	p, ok := a.Prospects.Get("CL-1005")
	require.True(t, ok)
	assert.Equal(t, "Acme", p.Name)
}

func TestImportCSV_MissingFile(t *testing.T) {
	a, ad := newTestApp(t)

	cmd := send(ad, ImportPathMsg{Path: filepath.Join(t.TempDir(), "missing.csv")})
	msg := follow(t, ad, cmd)
	require.IsType(t, CSVFileReadMsg{}, msg)
	assert.True(t, a.StatusIsError)
	assert.Contains(t, a.Status, "Import")
	assert.Equal(t, 4, a.Prospects.Len())
}

func TestExport_WritesActiveModuleFile(t *testing.T) {
	a, ad := newTestApp(t)

	msg := follow(t, ad, press(ad, " ", "e"))
	require.IsType(t, ExportMsg{}, msg)
	done := follow(t, ad, send(ad, msg))

	result, ok := done.(ExportDoneMsg)
	require.True(t, ok, "got %T", done)
	require.NoError(t, result.Err)
	assert.Equal(t, a.Exports.Path("client-orbit-export.csv"), result.Path)
	assert.Equal(t, result.Path, a.Workspace.LastExport)

	data, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "id,name,email,premium,status", lines[0])
	assert.Len(t, lines, 5)
}

func TestExport_NoStore(t *testing.T) {
	a, ad := newTestApp(t)
	a.Exports = nil

	follow(t, ad, send(ad, ExportMsg{}))
	assert.True(t, a.StatusIsError)
}

func TestOCR_ShowsSummary(t *testing.T) {
	a, ad := newTestApp(t)
	path := filepath.Join(t.TempDir(), "schedule.txt")
	require.NoError(t, os.WriteFile(path, []byte("Insured: Velocity Health\nLimit: 2,000,000\n"), 0o644))

	follow(t, ad, send(ad, OCRPathMsg{Path: path}))
	assert.False(t, a.StatusIsError, a.Status)
	assert.True(t, strings.HasPrefix(a.Workspace.OCRSummary, "OCR Summary for schedule.txt:"))
}

func TestAssistant_AskFromPanel(t *testing.T) {
	a, ad := newTestApp(t)
	a.Focus.SetFocus(PanelAssistant)

	press(ad, "i", "renewal")
	msg := follow(t, ad, press(ad, "enter"))
	assert.Equal(t, AskMsg{Query: "renewal"}, msg)

	msgs := a.Conversation.Messages()
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs[2].Content, "• Policy Forge:")
	assert.Equal(t, "", a.Assistant.Input())
}

func TestAssistant_AskUsesVisibleModulesOnly(t *testing.T) {
	a, ad := newTestApp(t)
	a.Sidebar.SetTerm("zzzz")

	send(ad, AskMsg{Query: "renewal"})
	msgs := a.Conversation.Messages()
	require.Len(t, msgs, 3)
	assert.True(t, strings.HasPrefix(msgs[2].Content, "For renewals"))
}

func TestAssistant_IntentFillsInput(t *testing.T) {
	a, ad := newTestApp(t)
	a.Focus.SetFocus(PanelAssistant)

	press(ad, "2")
	assert.True(t, a.Assistant.Editing())
	assert.Equal(t, "Show analytics with rising loss ratios", a.Assistant.Input())
	assert.Equal(t, 1, a.Conversation.Len(), "intents do not submit")
}

func TestModuleSwitcher(t *testing.T) {
	a, ad := newTestApp(t)
	a.Sidebar.SetTerm("policy")

	send(ad, ShowModuleSwitcherMsg{})
	require.Equal(t, 1, a.Overlays.Len())
	send(ad, SelectModuleMsg{ID: "claims-harbor"})
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, "", a.Sidebar.Term())
	assert.Equal(t, "claims-harbor", a.Workspace.Module.ID)
}

func TestCtrlCQuitsEvenWithOverlay(t *testing.T) {
	_, ad := newTestApp(t)
	send(ad, ShowStudioMsg{})

	cmd := press(ad, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSPCShowsKeybindHints(t *testing.T) {
	a, ad := newTestApp(t)

	press(ad, " ")
	require.True(t, a.KeyHandler.LeaderWaiting)
	view := ad.View()
	for _, hint := range []string{"No-code studio", "Import CSV", "Prospect", "Go to"} {
		assert.Contains(t, view, hint)
	}

	press(ad, "esc")
	assert.False(t, a.KeyHandler.LeaderWaiting)
	assert.NotContains(t, ad.View(), "No-code studio")
}

func TestView_RendersDashboard(t *testing.T) {
	_, ad := newTestApp(t)
	send(ad, tea.WindowSizeMsg{Width: 200, Height: 60})

	view := ad.View()
	for _, want := range []string{"Modules", "AtriSure Concierge", "Smart Intake Console", "$370,000", "Client Orbit"} {
		assert.Contains(t, view, want)
	}
}

func TestStudio_ResizesWhileOpen(t *testing.T) {
	a, ad := newTestApp(t)

	send(ad, ShowStudioMsg{})
	top, _ := a.Overlays.Peek()
	studioModal := top.View.(*StudioModal)

	send(ad, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 112, studioModal.width)
}

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusManager_Rotation(t *testing.T) {
	f := NewFocusManager(PanelSidebar, PanelWorkspace, PanelAssistant)
	assert.Equal(t, PanelSidebar, f.Current)

	assert.Equal(t, PanelWorkspace, f.Next())
	assert.Equal(t, PanelAssistant, f.Next())
	assert.Equal(t, PanelSidebar, f.Next())
	assert.Equal(t, PanelAssistant, f.Prev())
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := NewFocusManager(PanelSidebar, PanelWorkspace)

	var changes [][2]string
	f.OnChange = func(from, to string) { changes = append(changes, [2]string{from, to}) }

	assert.False(t, f.SetFocus("nope"))
	assert.True(t, f.Is(PanelSidebar))
	assert.True(t, f.SetFocus(PanelWorkspace))
	assert.True(t, f.SetFocus(PanelWorkspace))
	assert.Equal(t, [][2]string{{PanelSidebar, PanelWorkspace}}, changes)
}

func TestFocusManager_Empty(t *testing.T) {
	f := NewFocusManager()
	assert.Equal(t, "", f.Next())
	assert.Equal(t, "", f.Prev())

	var nilFocus *FocusManager
	assert.False(t, nilFocus.Is(PanelSidebar))
}

// Package ui is the terminal front end for the broker workspace.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - FocusManager: Tracks and rotates focus across the three dashboard panels
//   - OverlayStack: Modal views (studio, path prompt, confirmations) above the dashboard
//   - KeyHandler: SPC leader sequences dispatched through a KeybindRegistry
//
// AppModel owns all mutable domain state (prospect registry, studio canvas,
// conversation). Panels hold pointers to it and mutate it only from Update;
// file reads and writes run as tea.Cmds that report back with messages.
package ui

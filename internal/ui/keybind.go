package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leader is the canonical name of the space bar in sequences.
const leader = "SPC"

// binding is one registered sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty applies everywhere
}

// KeybindRegistry maps key sequences to commands.
// Sequences are space separated parts: "SPC n", "SPC g 1", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string]binding
	submenus map[string]string // prefix ("SPC p") -> label ("Prospect")
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		submenus: make(map[string]string),
	}
}

// Bind registers seq with no hint text.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForMode(seq, cmd, "", nil)
}

// BindWithDesc registers seq for every mode.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers seq and limits its hint to modes.
// A later call for the same sequence replaces the earlier one.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Submenu labels the keys that continue a sequence, so the hint bar reads
// "p Prospect" instead of "p…".
func (r *KeybindRegistry) Submenu(prefix, label string) {
	r.submenus[normalizeSeq(prefix)] = label
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// HasPrefix reports whether some binding continues past seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k, b := range r.bindings {
		if b.cmd != nil && strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints lists the next keys after currentSeq ("" means right after SPC)
// with their descriptions, skipping bindings hidden in mode.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	base := leader
	if currentSeq != "" {
		base = normalizeSeq(currentSeq)
	}
	out := make(map[string]string)
	for seq, b := range r.bindings {
		rest, ok := strings.CutPrefix(seq, base+" ")
		if !ok || b.cmd == nil || !b.visibleIn(mode) {
			continue
		}
		next, _, deeper := strings.Cut(rest, " ")
		switch {
		case deeper:
			if label, ok := r.submenus[base+" "+next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

func (b binding) visibleIn(mode AppMode) bool {
	return len(b.modes) == 0 || slices.Contains(b.modes, mode)
}

func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = seqPart(p)
	}
	return strings.Join(parts, " ")
}

// seqPart maps a tea key string onto sequence notation. Bubble Tea reports
// the space bar as " ".
func seqPart(s string) string {
	if s == " " || s == "space" {
		return leader
	}
	return s
}

// KeyHandler tracks a partially typed leader sequence.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderSeq     string
	LeaderWaiting bool
	buffer        []string
}

// NewKeyHandler creates a handler with the space bar as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg, LeaderSeq: leader}
}

// Handle feeds one key press through the leader state machine. consumed
// means the key belonged to the keybind system and must not reach a view.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	part := seqPart(msg.String())

	switch {
	case h.LeaderWaiting && part == "esc":
		h.Reset()
		return true, nil
	case part == h.LeaderSeq:
		h.LeaderWaiting = true
		h.buffer = []string{h.LeaderSeq}
		return true, nil
	case h.LeaderWaiting:
		h.buffer = append(h.buffer, part)
		seq := h.CurrentSeq()
		if c := h.Registry.Lookup(seq); c != nil {
			h.Reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq) {
			h.Reset()
		}
		return true, nil
	}

	if c := h.Registry.Lookup(part); c != nil {
		return true, c
	}
	return false, nil
}

// Reset drops any partially typed leader sequence.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.buffer = nil
}

// CurrentSeq returns the partially typed sequence ("" when idle).
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.buffer, " ")
}

// KeyMap adapts the leader hints to help.KeyMap.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap creates a KeyMap for the given registry, handler, and mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, mode: mode}
}

// ShortHelp lists the keys that can follow the current sequence, sorted,
// followed by esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	var seq string
	if km.keyHandler != nil {
		seq = km.keyHandler.CurrentSeq()
	}
	hints := km.registry.LeaderHints(seq, km.mode)
	if len(hints) == 0 {
		return nil
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp returns ShortHelp as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}

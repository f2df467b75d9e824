// Package studio implements the no-code studio's layout builder state.
//
// A Canvas holds an ordered list of blocks placed from a fixed template set,
// plus the block currently open in the inspector. Block uids come from a
// counter owned by the canvas, so a uid is never handed out twice during the
// canvas lifetime even after its block is removed.
//
// A Canvas is owned by the UI update loop and is not safe for concurrent use.
package studio

import (
	"fmt"
	"slices"
)

// PlacedBlock is a template instance on the canvas.
type PlacedBlock struct {
	UID        string
	TemplateID string
	Title      string
	Fields     []string
}

// PreviewBlock is a placed block joined with its template kind.
type PreviewBlock struct {
	PlacedBlock
	Kind Kind
}

// Canvas is the ordered collection of placed blocks plus selection.
type Canvas struct {
	templates *Templates
	blocks    []PlacedBlock
	selected  string // uid of the inspected block; "" when none
	counter   int
}

// NewCanvas creates an empty canvas bound to a template set.
// A nil set uses the built-in templates.
func NewCanvas(templates *Templates) *Canvas {
	if templates == nil {
		templates = BuiltinTemplates()
	}
	return &Canvas{templates: templates}
}

// Templates returns the template set the canvas draws from.
func (c *Canvas) Templates() *Templates {
	return c.templates
}

// AddBlock places a new block built from the template and selects it.
// Unknown template ids are ignored.
func (c *Canvas) AddBlock(templateID string) (PlacedBlock, bool) {
	tmpl, ok := c.templates.Get(templateID)
	if !ok {
		return PlacedBlock{}, false
	}
	c.counter++
	b := PlacedBlock{
		UID:        fmt.Sprintf("%s-%d", tmpl.ID, c.counter),
		TemplateID: tmpl.ID,
		Title:      tmpl.Name,
		Fields:     slices.Clone(tmpl.DefaultFields),
	}
	c.blocks = append(c.blocks, b)
	c.selected = b.UID
	return clonePlaced(b), true
}

// RemoveBlock deletes the block with the given uid.
// Removing the selected block clears the selection.
func (c *Canvas) RemoveBlock(uid string) bool {
	i := c.index(uid)
	if i < 0 {
		return false
	}
	c.blocks = slices.Delete(c.blocks, i, i+1)
	if c.selected == uid {
		c.selected = ""
	}
	return true
}

// UpdateBlockTitle renames a block. Only the selected block can be edited.
func (c *Canvas) UpdateBlockTitle(uid, title string) bool {
	if uid == "" || uid != c.selected {
		return false
	}
	i := c.index(uid)
	if i < 0 {
		return false
	}
	c.blocks[i].Title = title
	return true
}

// UpdateBlockField sets one field label of a block.
// Out-of-range indexes leave the block unchanged.
func (c *Canvas) UpdateBlockField(uid string, index int, value string) bool {
	i := c.index(uid)
	if i < 0 {
		return false
	}
	fields := c.blocks[i].Fields
	if index < 0 || index >= len(fields) {
		return false
	}
	fields[index] = value
	return true
}

// SelectBlock opens a block in the inspector. An empty or unknown uid clears
// the selection.
func (c *Canvas) SelectBlock(uid string) {
	if c.index(uid) < 0 {
		c.selected = ""
		return
	}
	c.selected = uid
}

// ClearSelection closes the inspector.
func (c *Canvas) ClearSelection() {
	c.selected = ""
}

// Selected returns the inspected block.
func (c *Canvas) Selected() (PlacedBlock, bool) {
	i := c.index(c.selected)
	if i < 0 {
		return PlacedBlock{}, false
	}
	return clonePlaced(c.blocks[i]), true
}

// SelectedUID returns the uid of the inspected block, or "".
func (c *Canvas) SelectedUID() string {
	return c.selected
}

// Blocks returns a copy of the placed blocks in canvas order.
func (c *Canvas) Blocks() []PlacedBlock {
	out := make([]PlacedBlock, len(c.blocks))
	for i, b := range c.blocks {
		out[i] = clonePlaced(b)
	}
	return out
}

// Len returns the number of placed blocks.
func (c *Canvas) Len() int {
	return len(c.blocks)
}

// Preview returns the placed blocks annotated with their template kind.
func (c *Canvas) Preview() []PreviewBlock {
	out := make([]PreviewBlock, 0, len(c.blocks))
	for _, b := range c.blocks {
		tmpl, _ := c.templates.Get(b.TemplateID)
		out = append(out, PreviewBlock{PlacedBlock: clonePlaced(b), Kind: tmpl.Kind})
	}
	return out
}

func (c *Canvas) index(uid string) int {
	if uid == "" {
		return -1
	}
	return slices.IndexFunc(c.blocks, func(b PlacedBlock) bool { return b.UID == uid })
}

func clonePlaced(b PlacedBlock) PlacedBlock {
	b.Fields = slices.Clone(b.Fields)
	return b
}

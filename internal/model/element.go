package model

// Element is one serialized node of an accessibility tree, as stored in a
// tree file. Role accepts both compact codes ("btn") and raw AX roles
// ("AXButton").
type Element struct {
	ID          int       `yaml:"i,omitempty"          json:"i,omitempty"`          // Object ID (0 = assign sequentially)
	Role        string    `yaml:"r"                    json:"r"`                    // Role code or raw AX role
	Subrole     string    `yaml:"sr,omitempty"         json:"sr,omitempty"`         // Raw AX subrole
	Title       string    `yaml:"t,omitempty"          json:"t,omitempty"`          // Visible label / title
	Value       string    `yaml:"v,omitempty"          json:"v,omitempty"`          // Current value
	Description string    `yaml:"d,omitempty"          json:"d,omitempty"`          // Accessibility description
	Name        string    `yaml:"name,omitempty"       json:"name,omitempty"`       // Form name; groups radio buttons
	Level       int       `yaml:"level,omitempty"      json:"level,omitempty"`      // Heading level
	Bounds      [4]int    `yaml:"b,omitempty"          json:"b,omitempty"`          // [x, y, width, height]
	Focused     bool      `yaml:"f,omitempty"          json:"f,omitempty"`          // Has keyboard focus
	Focusable   bool      `yaml:"kf,omitempty"         json:"kf,omitempty"`         // Reachable with the keyboard
	Ignored     bool      `yaml:"ignored,omitempty"    json:"ignored,omitempty"`    // Hidden from the accessibility tree
	Offscreen   bool      `yaml:"offscreen,omitempty"  json:"offscreen,omitempty"`  // Scrolled out of view
	Exposed     *bool     `yaml:"exposed,omitempty"    json:"exposed,omitempty"`    // Tables: nil or true = data table
	Live        string    `yaml:"live,omitempty"       json:"live,omitempty"`       // polite, assertive, off
	Visited     bool      `yaml:"visited,omitempty"    json:"visited,omitempty"`    // Links only
	Font        *Font     `yaml:"font,omitempty"       json:"font,omitempty"`       // Text style
	Misspelled  [][2]int  `yaml:"misspelled,omitempty" json:"misspelled,omitempty"` // Byte ranges of misspelled words
	Actions     []string  `yaml:"a,omitempty"          json:"a,omitempty"`          // Available actions
	Children    []Element `yaml:"c,omitempty"          json:"c,omitempty"`          // Child elements
}

// Font describes how an element's text is rendered.
type Font struct {
	Family    string  `yaml:"family,omitempty"    json:"family,omitempty"`
	Size      float64 `yaml:"size,omitempty"      json:"size,omitempty"`
	Color     string  `yaml:"color,omitempty"     json:"color,omitempty"`
	Bold      bool    `yaml:"bold,omitempty"      json:"bold,omitempty"`
	Italic    bool    `yaml:"italic,omitempty"    json:"italic,omitempty"`
	Underline bool    `yaml:"underline,omitempty" json:"underline,omitempty"`
	Highlight bool    `yaml:"highlight,omitempty" json:"highlight,omitempty"`
}

// styled reports whether any emphasis is applied.
func (f *Font) styled() bool {
	return f != nil && (f.Bold || f.Italic || f.Underline || f.Highlight)
}

// Document is the top-level layout of a tree file. A file may also hold a
// bare list of elements.
type Document struct {
	Viewport *[4]int   `yaml:"viewport,omitempty" json:"viewport,omitempty"`
	Elements []Element `yaml:"elements"           json:"elements"`
}

package style

import (
	"bytes"
	"fmt"
	"strings"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode       DisplayMode = iota   // unset or error condition
	DisplayNone  DisplayMode = 0x0001 // CSS outer display = none
	FlowMode     DisplayMode = 0x0002 // CSS inner display = flow
	BlockMode    DisplayMode = 0x0004 // CSS block context (outer)
	InlineMode   DisplayMode = 0x0008 // CSS inline context (outer)
	ListItemMode DisplayMode = 0x0010 // CSS list-item display
	FlowRoot     DisplayMode = 0x0020 // CSS flow-root display property
	FlexMode     DisplayMode = 0x0040 // CSS inner display = flex
	GridMode     DisplayMode = 0x0080 // CSS inner display = grid
	TableMode    DisplayMode = 0x0100 // CSS table display property (inner or outer)
	ContentsMode DisplayMode = 0x0200 // CSS contents display mode, experimental !
)

var allDisplayModes = []DisplayMode{
	DisplayNone, FlowMode, BlockMode, InlineMode, ListItemMode, FlowRoot, FlexMode,
	GridMode, TableMode, ContentsMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:       "NoMode",
	DisplayNone:  "none",
	FlowMode:     "flow",
	BlockMode:    "block",
	InlineMode:   "inline",
	ListItemMode: "list-item",
	FlowRoot:     "flow-root",
	FlexMode:     "flex",
	GridMode:     "grid",
	TableMode:    "table",
	ContentsMode: "contents",
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

// IsBlockLevel is true for display modes with an outer display type of block.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp.Contains(BlockMode) || disp.Contains(ListItemMode)
}

// IsAtomicInline is true for inline-level display modes which establish a
// new formatting context, like inline-block.
func (disp DisplayMode) IsAtomicInline() bool {
	return disp.Contains(InlineMode) && disp.Overlaps(FlowRoot|FlexMode|GridMode|TableMode)
}

func (disp DisplayMode) String() string {
	if name, ok := displayModeNames[disp]; ok {
		return name
	}
	return disp.FullString()
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp == FlowMode {
		return "▧"
	} else if disp.Contains(BlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) {
		return "►"
	} else if disp.Contains(FlexMode) {
		return "▤"
	} else if disp.Contains(GridMode) {
		return "◰"
	} else if disp.Contains(ListItemMode) {
		return "▣"
	} else if disp.Contains(TableMode) {
		return "▥"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
// Flex, grid and table layout are not supported and will be treated as flow
// layout by the box tree builder.
func ParseDisplay(display string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(display)) {
	case "":
		return NoMode, nil
	case "none":
		return DisplayNone, nil
	case "contents":
		return ContentsMode, nil
	case "block", "block flow":
		return BlockMode | FlowMode, nil
	case "inline", "inline flow":
		return InlineMode | FlowMode, nil
	case "list-item":
		return ListItemMode | BlockMode | FlowMode, nil
	case "flow-root", "block flow-root":
		return BlockMode | FlowRoot, nil
	case "inline-block", "inline flow-root":
		return InlineMode | FlowRoot, nil
	case "flex":
		return BlockMode | FlexMode, nil
	case "inline-flex":
		return InlineMode | FlexMode, nil
	case "grid":
		return BlockMode | GridMode, nil
	case "inline-grid":
		return InlineMode | GridMode, nil
	case "table":
		return BlockMode | TableMode, nil
	case "inline-table":
		return InlineMode | TableMode, nil
	}
	return BlockMode | FlowMode, fmt.Errorf("unknown display mode: %s", display)
}

// DefaultDisplay returns the default display mode for an HTML element, as
// suggested by the HTML user agent style sheet.
func DefaultDisplay(tag string) DisplayMode {
	switch tag {
	case "head", "script", "style", "title", "meta", "link", "template", "noscript":
		return DisplayNone
	case "html", "body", "div", "section", "article", "nav", "aside", "header", "footer",
		"main", "p", "h1", "h2", "h3", "h4", "h5", "h6", "pre", "blockquote", "ul", "ol",
		"dl", "dt", "dd", "figure", "figcaption", "hr", "address", "form", "fieldset",
		"table", "details", "summary":
		return BlockMode | FlowMode
	case "li":
		return ListItemMode | BlockMode | FlowMode
	case "img", "video", "canvas", "iframe", "object", "embed", "input", "button",
		"select", "textarea":
		return InlineMode | FlowRoot
	}
	return InlineMode | FlowMode
}

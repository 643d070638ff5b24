package layout

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/inline"
)

// Page is the initial containing block of a document.
type Page struct {
	dimen.Rect // page size
}

// NewPage creates a page of a given paper size, with its top left corner at
// the origin.
func NewPage(papersize dimen.Point) *Page {
	page := &Page{}
	page.Rect.BotR = papersize
	return page
}

// containingBlock returns the page as a logical containing block for a
// writing mode.
func (page *Page) containingBlock(mode frame.Mode) inline.ContainingBlock {
	cb := inline.ContainingBlock{
		InlineSize: page.Width(),
		BlockSize:  page.Height(),
		Mode:       mode,
	}
	if mode.IsVertical() {
		cb.InlineSize, cb.BlockSize = cb.BlockSize, cb.InlineSize
	}
	return cb
}

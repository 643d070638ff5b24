package monospace

import (
	"strings"
	"sync"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/glyphing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

// Font is a font where every grapheme has the same advance.
type Font struct {
	Em       dimen.Dimen // font size
	Advance  dimen.Dimen // advance of a narrow grapheme
	Space    dimen.Dimen // advance of U+0020
	Asc      dimen.Dimen // ascent
	Desc     dimen.Dimen // descent
	context  *uax11.Context
	mx       sync.Mutex
	splitter *segment.Segmenter
}

var _ glyphing.Font = &Font{}

var setupGraphemes sync.Once

// New creates a monospace font for an em-size. Narrow graphemes (including
// spaces) advance by half an em. Ascent and descent are set to 4/5 and 1/5 of
// the em-size. If em is zero, it will be set to 10px.
func New(em dimen.Dimen) *Font {
	if em == 0 {
		em = 10 * dimen.PX
	}
	return WithMetrics(em, em/2, em/2, em*4/5, em/5)
}

// WithMetrics creates a monospace font with explicit metrics.
func WithMetrics(em, advance, space, ascent, descent dimen.Dimen) *Font {
	if em == 0 {
		em = 10 * dimen.PX
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	onGraphemes := grapheme.NewBreaker(1)
	return &Font{
		Em:       em,
		Advance:  advance,
		Space:    space,
		Asc:      ascent,
		Desc:     descent,
		context:  uax11.LatinContext,
		splitter: segment.NewSegmenter(onGraphemes),
	}
}

func (f *Font) Size() dimen.Dimen    { return f.Em }
func (f *Font) Ascent() dimen.Dimen  { return f.Asc }
func (f *Font) Descent() dimen.Dimen { return f.Desc }
func (f *Font) Ex() dimen.Dimen      { return f.Em / 2 }

// MeasureString returns the sum of the advances of the graphemes of s.
func (f *Font) MeasureString(s string) (dimen.Dimen, error) {
	f.mx.Lock()
	defer f.mx.Unlock()
	var w dimen.Dimen
	f.splitter.Init(strings.NewReader(s))
	for f.splitter.Next() {
		grphm := f.splitter.Bytes()
		if len(grphm) == 1 && grphm[0] == ' ' {
			w += f.Space
			continue
		}
		w += dimen.Dimen(uax11.Width(grphm, f.context)) * f.Advance
	}
	tracer().Debugf("monospace: width(%q) = %s", s, w)
	return w, nil
}

package boxtree

import (
	"strings"

	"github.com/npillmayer/boxflow/engine/dom/style"
	"golang.org/x/text/unicode/norm"
)

// tabSize is the number of columns between tab stops.
const tabSize = 8

// whitespace holds the white-space processing state of an inline formatting
// context under construction. Collapsing of spaces works across text runs.
type whitespace struct {
	afterSpace bool     // last character emitted was a collapsible space or a line start
	last       *TextRun // last text run emitted with collapsing white-space
}

func newWhitespace() whitespace {
	return whitespace{afterSpace: true}
}

// process normalizes text to NFC and applies white-space processing rules.
func (w *whitespace) process(text string, ws style.WhiteSpace) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if !ws.CollapsesSpaces() {
		w.afterSpace = strings.HasSuffix(text, "\n")
		return expandTabs(text)
	}
	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '\n' && ws.PreservesNewlines():
			w.trimBuilder(&b)
			b.WriteRune('\n')
			w.afterSpace = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\f':
			if !w.afterSpace {
				b.WriteRune(' ')
				w.afterSpace = true
			}
		default:
			b.WriteRune(r)
			w.afterSpace = false
		}
	}
	return b.String()
}

// trimBuilder removes a trailing space from b, which has to be dropped in
// front of a preserved newline.
func (w *whitespace) trimBuilder(b *strings.Builder) {
	s := b.String()
	if strings.HasSuffix(s, " ") {
		b.Reset()
		b.WriteString(strings.TrimSuffix(s, " "))
	} else if s == "" {
		w.trimTrailing()
	}
}

// emitted registers a text run with the state.
func (w *whitespace) emitted(run *TextRun) {
	if run.Style.WhiteSpace.CollapsesSpaces() {
		w.last = run
	} else {
		w.last = nil
	}
}

// content registers content other than text, e.g. an atomic box.
func (w *whitespace) content() {
	w.afterSpace = false
	w.last = nil
}

// forcedBreak registers a forced line break.
func (w *whitespace) forcedBreak() {
	w.trimTrailing()
	w.afterSpace = true
	w.last = nil
}

// trimTrailing removes a collapsible space at the end of the last text run,
// as spaces at the end of a line are removed.
func (w *whitespace) trimTrailing() {
	if w.last != nil {
		w.last.Text = strings.TrimSuffix(w.last.Text, " ")
	}
}

// expandTabs replaces tabs by spaces up to the next tab stop. Columns are
// counted from the start of the text or the last newline.
func expandTabs(text string) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}
	var b strings.Builder
	col := 0
	for _, r := range text {
		switch r {
		case '\t':
			n := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

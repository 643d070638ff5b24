package recorder

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/npillmayer/boxflow/backend/gfx"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCalls(t *testing.T) {
	d := &Device{}
	pts := []dimen.Point{{X: 0, Y: 0}, {X: dimen.PX, Y: 0}}
	d.DrawRect(1, 2, 3, 4, color.Black)
	d.DrawText("hi", 5, 6, nil, color.Black)
	d.DrawLine(pts, color.Black, dimen.PX, gfx.LineDashed)
	d.RecordBBox(dimen.RectFrom(dimen.Origin, dimen.PX, dimen.PX))
	pts[1].X = 99 // recorded points must not change
	require.Len(t, d.Calls, 4)
	assert.Equal(t, []string{"hi"}, d.Texts())
	lines := d.Filter(OpLine)
	require.Len(t, lines, 1)
	assert.Equal(t, dimen.PX, lines[0].Points[1].X)
	assert.Equal(t, gfx.LineDashed, lines[0].Style)
	var buf bytes.Buffer
	d.Dump(&buf)
	assert.Contains(t, buf.String(), `text "hi" at (5.00,6.00)`)
	assert.Contains(t, buf.String(), "rect (1.00,2.00) 3.00x4.00")
}

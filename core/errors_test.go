package core

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EDEPTH, "inline boxes nested deeper than %d", 4)
	assert.Equal(t, EDEPTH, Code(err))
	assert.Equal(t, "inline boxes nested deeper than 4", UserMessage(err))
	assert.Equal(t, "[132] nesting too deep: inline boxes nested deeper than 4", err.Error())
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	plain := errors.New("boom")
	assert.Equal(t, EINTERNAL, Code(plain))
	assert.Equal(t, "internal error", UserMessage(plain))
}

func TestWrappedErrors(t *testing.T) {
	err := WrapError(io.ErrUnexpectedEOF, EMEASURE, "cannot measure %q", "abc")
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, `[130] cannot measure "abc": unexpected EOF`, err.Error())
	outer := fmt.Errorf("layout: %w", err)
	assert.Equal(t, EMEASURE, Code(outer))
	assert.Equal(t, `cannot measure "abc"`, UserMessage(outer))
	assert.Equal(t, EMISSING, Code(WrapError(nil, EMISSING, "no font")))
}

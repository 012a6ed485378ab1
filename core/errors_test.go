package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.core")
	defer teardown()
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := Error(EMISSING, "image not found: %s", "a.png")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "image not found: a.png", UserMessage(err))
	assert.Equal(t, "", UserMessage(nil))
}

func TestWrapErrorKeepsChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.core")
	defer teardown()
	//
	cause := errors.New("unexpected token")
	err := WrapError(cause, EINVALID, "bad declaration %q", "color:")
	assert.True(t, errors.Is(err, cause))
	wrapped := fmt.Errorf("element <p>: %w", err)
	assert.Equal(t, EINVALID, Code(wrapped))
	assert.Equal(t, `bad declaration "color:"`, UserMessage(wrapped))
	//
	err = WrapError(nil, EMARKUP, "cannot read")
	assert.Contains(t, err.Error(), "unreadable markup")
}

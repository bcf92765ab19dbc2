package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = &Error{
	Message: "duration %s is not a preset",
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errSample.Fmt("7m")

	assert.Equal(t, "duration 7m is not a preset", err.Error())
	assert.ErrorIs(t, err, errSample)
	assert.Equal(t, "duration %s is not a preset", errSample.Message)
}

func TestWrap(t *testing.T) {
	err := errSample.Fmt("7m").Wrap(io.EOF)

	assert.Equal(t, "duration 7m is not a preset: EOF", err.Error())
	assert.ErrorIs(t, err, errSample)
	assert.ErrorIs(t, err, io.EOF)
}

func TestIsRejectsOtherSentinels(t *testing.T) {
	other := &Error{Message: "duration %s is not a preset"}

	assert.False(t, errors.Is(errSample.Fmt("1m"), other))
	assert.False(t, errors.Is(errSample, io.EOF))
}

package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/pointwerk/e57"
	"codeberg.org/pointwerk/e57/logger"
)

func TestErrorWithCode(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(&buf, true, false)

	ex := e57.NewAt(e57.ErrBadChecksum, "offset=128", "/src/Pager.cpp", 77, "readPage")
	logger.ErrorWithCode(ex).Msg("page read failed")

	out := buf.String()
	assert.Contains(t, out, "page read failed")
	assert.Contains(t, out, "error_code")
	assert.Contains(t, out, "16")
	assert.Contains(t, out, "offset=128")
	assert.Contains(t, out, "Pager.cpp")
	assert.Contains(t, out, "readPage")
}

func TestErrorWithCodeNoLocation(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(&buf, true, false)

	logger.ErrorWithCode(e57.New(e57.ErrTooManyWriters, "")).Msg("writer limit")

	out := buf.String()
	assert.Contains(t, out, "writer limit")
	assert.NotContains(t, out, "source_file")
	assert.NotContains(t, out, "error_context")
}

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(&buf, false, false) // default WarnLevel

	logger.Info().Msg("should be dropped")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("should pass")
	assert.Contains(t, buf.String(), "should pass")
}

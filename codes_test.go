package e57_test

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/pointwerk/e57"
)

var codeRe = regexp.MustCompile(`\(code (-?\d+)\)`)

func TestDescribeAllCodes(t *testing.T) {
	for code := e57.Success; code <= e57.ErrInvarianceViolation; code++ {
		desc := e57.Describe(code)
		require.NotEmpty(t, desc, "code %d", int(code))
		assert.NotContains(t, desc, "unknown error", "code %d must have a dedicated description", int(code))

		// The parenthetical numeric identifier must round-trip to the
		// enumerator value.
		m := codeRe.FindStringSubmatch(desc)
		require.NotNil(t, m, "no numeric identifier in %q", desc)
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		assert.Equal(t, int(code), n, "identifier in %q", desc)
	}
}

func TestDescribeUnknownCode(t *testing.T) {
	desc := e57.Describe(e57.ErrorCode(9999))
	assert.Contains(t, desc, "unknown error")
	assert.Contains(t, desc, "9999")

	desc = e57.Describe(e57.ErrorCode(-1))
	assert.Contains(t, desc, "unknown error")
	assert.Contains(t, desc, "-1")
}

func TestCodeValuesStable(t *testing.T) {
	// Numeric values are part of the API contract.
	assert.Equal(t, 0, int(e57.Success))
	assert.Equal(t, 1, int(e57.ErrBadCVHeader))
	assert.Equal(t, 11, int(e57.ErrInternal))
	assert.Equal(t, 17, int(e57.ErrOpenFailed))
	assert.Equal(t, 27, int(e57.ErrBadFileSignature))
	assert.Equal(t, 45, int(e57.ErrImageFileNotOpen))
	assert.Equal(t, 50, int(e57.ErrInvarianceViolation))
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, e57.Describe(e57.ErrBadChecksum), e57.ErrBadChecksum.String())
}

func TestCodeOf(t *testing.T) {
	ex := e57.New(e57.ErrBadPathName, "path=/cartesianX")
	assert.Equal(t, e57.ErrBadPathName, e57.CodeOf(ex))

	wrapped := fmt.Errorf("loading scan: %w", ex)
	assert.Equal(t, e57.ErrBadPathName, e57.CodeOf(wrapped))

	assert.Equal(t, e57.Success, e57.CodeOf(nil))
	assert.Equal(t, e57.Success, e57.CodeOf(errors.New("plain")))
}

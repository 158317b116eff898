package e57_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/pointwerk/e57"
)

func TestNewAtAccessors(t *testing.T) {
	ex := e57.NewAt(e57.ErrBadChecksum, "offset=1024 page=3", "/src/lib/Pager.cpp", 217, "readPage")

	// Accessors are pure reads; check them twice.
	for i := 0; i < 2; i++ {
		assert.Equal(t, e57.ErrBadChecksum, ex.Code())
		assert.Equal(t, "offset=1024 page=3", ex.Context())
		assert.Equal(t, "Pager.cpp", ex.SourceFileName())
		assert.Equal(t, "readPage", ex.SourceFunctionName())
		assert.Equal(t, 217, ex.SourceLineNumber())
	}
}

func TestSourceFileNormalization(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unix path", "/a/b/c.cpp", "c.cpp"},
		{"no separator", "c.cpp", "c.cpp"},
		{"windows path", `a\b\c.cpp`, "c.cpp"},
		{"mixed separators", `a/b\c.cpp`, "c.cpp"},
		{"trailing separator", "a/b/", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := e57.NewAt(e57.ErrOpenFailed, "", tt.in, 1, "open")
			assert.Equal(t, tt.want, ex.SourceFileName())
		})
	}
}

func TestNewHasNoLocation(t *testing.T) {
	ex := e57.New(e57.ErrSetTwice, "")
	assert.Empty(t, ex.Context())
	assert.Empty(t, ex.SourceFileName())
	assert.Empty(t, ex.SourceFunctionName())
	assert.Zero(t, ex.SourceLineNumber())
}

// propagate pushes an exception through a couple of ordinary error-typed
// function boundaries, the way the codec and tree layers hand failures up
// to the public API.
func propagate(ex *e57.Exception) error {
	var f func(int) error
	f = func(depth int) error {
		if depth == 0 {
			return ex
		}
		return f(depth - 1)
	}

	return f(3)
}

func TestAccessorsSurvivePropagation(t *testing.T) {
	err := propagate(e57.NewAt(e57.ErrNodeUnattached, "node=points", "/tree/Node.cpp", 88, "attach"))

	var ex *e57.Exception
	require.True(t, errors.As(err, &ex))
	assert.Equal(t, e57.ErrNodeUnattached, ex.Code())
	assert.Equal(t, "node=points", ex.Context())
	assert.Equal(t, "Node.cpp", ex.SourceFileName())
	assert.Equal(t, "attach", ex.SourceFunctionName())
	assert.Equal(t, 88, ex.SourceLineNumber())
}

func TestCategoryIsConstant(t *testing.T) {
	a := e57.New(e57.ErrOpenFailed, "")
	b := e57.New(e57.ErrInvarianceViolation, "x=1")
	assert.Equal(t, a.Category(), b.Category())
	assert.Equal(t, "E57 exception", a.Category())
}

func TestErrorString(t *testing.T) {
	ex := e57.New(e57.ErrBadFileSignature, "sig=XYZ")
	assert.Contains(t, ex.Error(), "E57 exception")
	assert.Contains(t, ex.Error(), e57.Describe(e57.ErrBadFileSignature))
	assert.Contains(t, ex.Error(), "sig=XYZ")

	bare := e57.New(e57.ErrBadFileSignature, "")
	assert.Contains(t, bare.Error(), "E57 exception")
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	ex := e57.NewAt(e57.ErrTooManyReaders, "count=17", "reader.go", 10, "NewReader")
	assert.True(t, errors.Is(ex, e57.New(e57.ErrTooManyReaders, "")))
	assert.False(t, errors.Is(ex, e57.New(e57.ErrTooManyWriters, "")))
}

func TestHereCapturesCaller(t *testing.T) {
	ex := e57.Here(e57.ErrBadBuffer, "capacity=0")

	assert.Equal(t, e57.ErrBadBuffer, ex.Code())
	assert.Equal(t, "exception_test.go", ex.SourceFileName())
	assert.Positive(t, ex.SourceLineNumber())
	assert.Contains(t, ex.SourceFunctionName(), "TestHereCapturesCaller")
}

func TestReservedKindHelpers(t *testing.T) {
	in := e57.Internal("check=nodeCount")
	assert.Equal(t, e57.ErrInternal, in.Code())
	assert.Equal(t, "exception_test.go", in.SourceFileName())
	assert.Contains(t, in.SourceFunctionName(), "TestReservedKindHelpers")

	no := e57.NotOpen("")
	assert.Equal(t, e57.ErrImageFileNotOpen, no.Code())
	assert.Equal(t, "exception_test.go", no.SourceFileName())
}

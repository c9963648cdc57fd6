package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name         string
		err          *Error
		kind         Kind
		isNotFound   bool
		isValidation bool
		isProcessing bool
	}{
		{
			name:       "not found",
			err:        NotFound("input file not found: %s", "a.wav"),
			kind:       KindNotFound,
			isNotFound: true,
		},
		{
			name:         "validation",
			err:          Validation(nil, "cannot create output directory: %s", "/nope"),
			kind:         KindValidation,
			isValidation: true,
		},
		{
			name:         "processing",
			err:          Processing(fmt.Errorf("exit status 1"), "ffmpeg failed"),
			kind:         KindProcessing,
			isProcessing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind())
			assert.Equal(t, tt.isNotFound, IsNotFound(tt.err))
			assert.Equal(t, tt.isValidation, IsValidation(tt.err))
			assert.Equal(t, tt.isProcessing, IsProcessing(tt.err))
		})
	}
}

func TestProcessingPreservesCause(t *testing.T) {
	cause := fmt.Errorf("exit status 1")
	err := Processing(cause, "ffmpeg failed, stderr: %s", "corrupt header")

	require.ErrorContains(t, err, "ffmpeg failed")
	require.ErrorContains(t, err, "exit status 1")
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, cause))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := NotFound("input file not found: %s", "a.wav")
	outer := fmt.Errorf("pipeline step failed: %w", inner)

	assert.True(t, IsNotFound(outer))
	assert.Equal(t, KindNotFound, KindOf(outer))
}

func TestKindOfForeignError(t *testing.T) {
	// Errors from outside the taxonomy count as engine failures.
	assert.Equal(t, KindProcessing, KindOf(fmt.Errorf("something else")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "processing", KindProcessing.String())
}

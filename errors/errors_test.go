package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrInvalidShape, "pushing tuple field")

	assert.Contains(t, err.Error(), "pushing tuple field")
	assert.True(t, Is(err, ErrInvalidShape))
	assert.False(t, Is(err, ErrMissingBody))
}

func TestSentinelHelpers(t *testing.T) {
	assert.True(t, IsInvalidShape(Wrap(ErrInvalidShape, "ctx")))
	assert.True(t, IsMissingBody(Wrap(ErrMissingBody, "ctx")))
	assert.True(t, IsInvalidVisibility(Wrap(ErrInvalidVisibility, "ctx")))
	assert.True(t, IsInvalidIdentity(Wrap(ErrInvalidIdentity, "ctx")))

	assert.False(t, IsInvalidShape(nil))
	assert.False(t, IsInvalidShape(New("unrelated")))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrInvalidShape, ErrMissingBody, ErrInvalidVisibility, ErrInvalidIdentity}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "sentinel %d should not match sentinel %d", i, j)
		}
	}
}

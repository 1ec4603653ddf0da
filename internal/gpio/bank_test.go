package gpio

import (
	stderrors "errors"
	"testing"

	"github.com/rileyhilliard/rmon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHostInit(t *testing.T, fn func() error) {
	t.Helper()
	orig := initHost
	initHost = fn
	t.Cleanup(func() { initHost = orig })
}

func TestOpen_DriverFailureIsFatal(t *testing.T) {
	withHostInit(t, func() error { return stderrors.New("no /dev/gpiomem") })

	b, err := Open([]int{4}, nil)

	require.Error(t, err)
	assert.Nil(t, b)
	assert.True(t, errors.IsCode(err, errors.ErrHardware))
}

func TestOpen_UnknownAndReservedLines(t *testing.T) {
	withHostInit(t, func() error { return nil })

	// With no drivers registered no GPIO line resolves by name.
	b, err := Open([]int{2, 4}, []int{2})
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Read(2)
	assert.ErrorIs(t, err, ErrReserved)

	_, err = b.Read(4)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = b.Read(40)
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.Equal(t, 0, b.Configured())
}

func TestPeriphBank_CloseIdempotent(t *testing.T) {
	withHostInit(t, func() error { return nil })

	b, err := Open(nil, nil)
	require.NoError(t, err)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, err = b.Read(4)
	assert.ErrorIs(t, err, ErrClosed)
}

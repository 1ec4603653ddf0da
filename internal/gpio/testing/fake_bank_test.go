package testing

import (
	"errors"
	"testing"

	"github.com/rileyhilliard/rmon/internal/gpio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeBank_Read(t *testing.T) {
	b := NewFakeBank(map[int]gpio.Level{4: gpio.High, 17: gpio.Low})
	b.Fail(27, errors.New("fault"))

	lvl, err := b.Read(4)
	require.NoError(t, err)
	assert.Equal(t, gpio.High, lvl)

	lvl, err = b.Read(17)
	require.NoError(t, err)
	assert.Equal(t, gpio.Low, lvl)

	_, err = b.Read(27)
	assert.EqualError(t, err, "fault")

	_, err = b.Read(99)
	assert.ErrorIs(t, err, gpio.ErrNotConfigured)

	assert.Equal(t, 1, b.ReadCount(4))
	assert.Equal(t, 3, b.Configured())
}

func TestFakeBank_Close(t *testing.T) {
	b := NewFakeBank(map[int]gpio.Level{4: gpio.High})

	require.NoError(t, b.Close())
	assert.True(t, b.Closed())
	assert.Equal(t, 1, b.CloseCalls)

	_, err := b.Read(4)
	assert.ErrorIs(t, err, gpio.ErrClosed)
}

var _ gpio.Bank = (*FakeBank)(nil)

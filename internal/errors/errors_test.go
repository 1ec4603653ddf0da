package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrTerminal,
		ErrHardware,
		ErrSource,
		ErrExec,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid refresh interval",
			suggestion: "Set RMON_INTERVAL to a duration like 1s",
		},
		{
			name:       "terminal error",
			code:       ErrTerminal,
			message:    "Standard output is not a terminal",
			suggestion: "Run rmon from an interactive shell",
		},
		{
			name:       "hardware error",
			code:       ErrHardware,
			message:    "GPIO subsystem unavailable",
			suggestion: "Check /dev/gpiomem permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "message and suggestion",
			err:           New(ErrConfig, "Invalid configuration", "Check RMON_* variables"),
			expectedParts: []string{"✗ Invalid configuration", "Check RMON_* variables"},
		},
		{
			name:          "cause is included",
			err:           WrapWithCode(fmt.Errorf("permission denied"), ErrHardware, "GPIO init failed", ""),
			expectedParts: []string{"GPIO init failed", "permission denied"},
		},
		{
			name:          "empty suggestion omitted",
			err:           Wrap(fmt.Errorf("boom"), "Reader failed"),
			expectedParts: []string{"Reader failed", "boom"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.Contains(t, msg, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, msg, part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("file not found")
	err := Wrap(cause, "thermal read failed")

	assert.Equal(t, ErrSource, err.Code)
	assert.Equal(t, cause, err.Cause)
	assert.True(t, strings.HasPrefix(err.Error(), "✗ thermal read failed"))
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("not a tty")
	err := WrapWithCode(cause, ErrTerminal, "Terminal setup failed", "")
	wrapped := fmt.Errorf("starting dashboard: %w", err)

	assert.True(t, errors.Is(wrapped, cause))

	var rmErr *Error
	require.True(t, errors.As(wrapped, &rmErr))
	assert.Equal(t, ErrTerminal, rmErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrHardware, "gpio", "")

	assert.True(t, IsCode(err, ErrHardware))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrHardware))
	assert.False(t, IsCode(errors.New("plain"), ErrHardware))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain error", errors.New("boom"), ExitFailure},
		{"config", New(ErrConfig, "bad", ""), ExitConfig},
		{"terminal", New(ErrTerminal, "no tty", ""), ExitTerminal},
		{"hardware", New(ErrHardware, "no gpio", ""), ExitHardware},
		{"exec falls back", New(ErrExec, "cmd", ""), ExitFailure},
		{"wrapped terminal", fmt.Errorf("run: %w", New(ErrTerminal, "no tty", "")), ExitTerminal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

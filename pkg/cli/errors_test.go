package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	inner := errors.New("missing [cache] section")
	err := NewConfigError("config.toml", inner)

	assert.Equal(t, "config error in config.toml: missing [cache] section", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestCommandError(t *testing.T) {
	inner := errors.New("boom")
	err := NewCommandError("resolve", inner)

	assert.Equal(t, "command resolve failed: boom", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestExitError(t *testing.T) {
	assert.Equal(t, "exit status 3", NewExitError(ExitUnhealthy, nil).Error())
	assert.Equal(t, "unhealthy", NewExitError(ExitUnhealthy, errors.New("unhealthy")).Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain", errors.New("x"), ExitFailure},
		{"config", NewConfigError("c.toml", errors.New("bad")), ExitInvalidConfig},
		{"wrapped config", fmt.Errorf("check: %w", NewConfigError("c.toml", errors.New("bad"))), ExitInvalidConfig},
		{"explicit", NewExitError(ExitUnhealthy, nil), ExitUnhealthy},
		{"explicit wins over config", NewExitError(ExitFailure, NewConfigError("c.toml", errors.New("bad"))), ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

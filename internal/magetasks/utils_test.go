package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "exec.ErrNotFound", err: exec.ErrNotFound, want: true},
		{name: "wrapped", err: fmt.Errorf("running lint: %w", exec.ErrNotFound), want: true},
		{name: "mage sh message", err: errors.New(`failed to run "staticcheck ./...": exec: "staticcheck": executable file not found in $PATH`), want: true},
		{name: "missing path", err: errors.New("fork/exec ./bin/x: no such file or directory"), want: true},
		{name: "exit status", err: errors.New("exit status 1"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCommandNotFound(tt.err))
		})
	}
}

func TestOptional(t *testing.T) {
	assert.NoError(t, optional("tool", "example.com/tool@latest", nil))
	assert.ErrorIs(t, optional("tool", "example.com/tool@latest", exec.ErrNotFound), exec.ErrNotFound)

	err := optional("tool", "example.com/tool@latest", errors.New("exit status 3"))
	assert.EqualError(t, err, "tool failed: exit status 3")
}

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestRun_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "success.db")
	stdout, stderr, stdin := new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)

	args := []string{"-username", "ops", "-email", "ops@example.com", "-password", "password123", "-sqlite", dbPath}
	err := run(args, stdin, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "User ops created successfully")
	assert.FileExists(t, dbPath)
}

func TestRun_DuplicateUser(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "duplicate.db")
	stdout, stderr, stdin := new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)

	args := []string{"-username", "ops", "-email", "ops@example.com", "-password", "password123", "-sqlite", dbPath}
	require.NoError(t, run(args, stdin, stdout, stderr), "first run should succeed")

	err := run(args, stdin, stdout, stderr)
	require.Error(t, err, "expected error on duplicate user")
	assert.Contains(t, err.Error(), "Username already registered")
}

func TestRun_MissingFlags(t *testing.T) {
	stdout, stderr, stdin := new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)

	err := run([]string{"-username", "ops"}, stdin, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestRun_InteractivePassword(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "interactive.db")
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	stdin := bytes.NewBufferString("interactive-secret\n")

	args := []string{"-username", "prompted", "-email", "prompted@example.com", "-sqlite", dbPath}
	err := run(args, stdin, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Password: ")
	assert.Contains(t, stdout.String(), "User prompted created successfully")
}

func TestRun_PasswordRules(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		want  string
	}{
		{name: "empty", stdin: "\n", want: "password cannot be empty"},
		{name: "short", stdin: "abc\n", want: "at least 8 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
			args := []string{"-username", "u", "-email", "u@example.com", "-sqlite", filepath.Join(t.TempDir(), "x.db")}

			err := run(args, bytes.NewBufferString(tt.stdin), stdout, stderr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_InvalidSQLitePath(t *testing.T) {
	stdout, stderr, stdin := new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)

	args := []string{"-username", "u", "-email", "u@example.com", "-password", "password123", "-sqlite", t.TempDir()}
	err := run(args, stdin, stdout, stderr)
	require.Error(t, err)
}

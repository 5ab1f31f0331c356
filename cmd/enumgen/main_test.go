package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, logs, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvalidManifest(t *testing.T) {
	t.Parallel()

	// A manifest with a syntax error must surface as a parse failure.
	invalidHCL := `
		generate {
			domain "Signal" {
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	manifestPath := filepath.Join(tempDir, "enumgen.hcl")
	err := os.WriteFile(manifestPath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-config", manifestPath, "-log-level", "error"}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	runErr := run(out, logs, args)

	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_GeneratesToStdout(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	src := `package lights

type Signal int

const (
	Red Signal = iota
	Green
)
`
	err := os.WriteFile(filepath.Join(tempDir, "lights.go"), []byte(src), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-stdout", "-log-level", "error", tempDir}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err = run(out, logs, args)

	require.NoError(t, err)
	require.Contains(t, out.String(), "package lights")
	require.Contains(t, out.String(), "SignalDomain")
}

// Package test holds helpers shared by the package tests.
package test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// CreateTestFile writes a file with content into the test filesystem.
func CreateTestFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	err := afero.WriteFile(fs, path, []byte(content), 0644)
	require.NoError(t, err)
}

// AssertFileContent checks that a file exists with exactly the expected
// content.
func AssertFileContent(t *testing.T, fs afero.Fs, path, expected string) {
	t.Helper()
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "File %s should exist", path)
	require.Equal(t, expected, string(content))
}

// AssertFileNotExists checks that a file does not exist.
func AssertFileNotExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.False(t, exists, "File %s should not exist", path)
}

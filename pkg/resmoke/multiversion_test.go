package resmoke

import (
	"testing"

	"genmocks/pkg/test"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMultiversionConfig_CreatesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := test.NewMockLogger()

	require.NoError(t, WriteMultiversionConfig(fs, DefaultMultiversionFile, logger))

	test.AssertFileContent(t, fs, DefaultMultiversionFile, MultiversionDoc())
	assert.True(t, logger.HasMessage("Wrote multiversion config"))
}

func TestWriteMultiversionConfig_SecondCallLeavesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := test.NewMockLogger()

	require.NoError(t, WriteMultiversionConfig(fs, DefaultMultiversionFile, logger))
	logger.Reset()
	require.NoError(t, WriteMultiversionConfig(fs, DefaultMultiversionFile, logger))

	test.AssertFileContent(t, fs, DefaultMultiversionFile, MultiversionDoc())
	assert.True(t, logger.HasMessage("already present"))
	assert.False(t, logger.HasMessage("differs"))
}

func TestWriteMultiversionConfig_DivergentFileUntouchedButWarned(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := test.NewMockLogger()
	test.CreateTestFile(t, fs, DefaultMultiversionFile, "last_versions:\n- last_lts\n")

	require.NoError(t, WriteMultiversionConfig(fs, DefaultMultiversionFile, logger))

	test.AssertFileContent(t, fs, DefaultMultiversionFile, "last_versions:\n- last_lts\n")
	assert.True(t, logger.HasMessage("differs"))
}

func TestWriteMultiversionConfig_CustomPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := test.NewMockLogger()

	require.NoError(t, WriteMultiversionConfig(fs, "out/mv.yml", logger))

	test.AssertFileContent(t, fs, "out/mv.yml", MultiversionDoc())
	test.AssertFileNotExists(t, fs, DefaultMultiversionFile)
}

package main

import (
	"bytes"
	"testing"

	"genmocks/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	if args == nil {
		// SetArgs(nil) would fall back to os.Args.
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestBurnIn_PrintsThreeTasks(t *testing.T) {
	output, err := executeCommand()
	require.NoError(t, err)

	var doc model.DiscoveredTasks
	require.NoError(t, yaml.Unmarshal([]byte(output), &doc))

	require.Len(t, doc.DiscoveredTasks, 3)
	assert.Equal(t, "jsCore", doc.DiscoveredTasks[0].TaskName)
	assert.Equal(t, "sharding_jscore_passthrough", doc.DiscoveredTasks[1].TaskName)
	assert.Equal(t, "replica_sets_jscore_passthrough", doc.DiscoveredTasks[2].TaskName)
	for _, task := range doc.DiscoveredTasks {
		assert.Equal(t, []string{"tests/data/tests/test_0.js"}, task.TestList)
	}
}

func TestBurnIn_IsDeterministic(t *testing.T) {
	first, err := executeCommand()
	require.NoError(t, err)
	second, err := executeCommand()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBurnIn_RejectsArguments(t *testing.T) {
	output, err := executeCommand("discover")
	require.Error(t, err)
	assert.Empty(t, output)
}

// Package model holds the document types the mocks emit. The yaml field
// names mirror what the task-generation system deserializes, so anything
// the mocks print is guaranteed to parse on the consumer side.
package model

// DiscoveredTask is one task reported by burn-in discovery.
type DiscoveredTask struct {
	TaskName string   `yaml:"task_name"`
	TestList []string `yaml:"test_list"`
}

// DiscoveredTasks is the document burn-in discovery prints.
type DiscoveredTasks struct {
	DiscoveredTasks []DiscoveredTask `yaml:"discovered_tasks"`
}

// MultiversionConfig describes the prior versions and FCV tags relevant for
// multiversion testing.
type MultiversionConfig struct {
	LastVersions   []string `yaml:"last_versions"`
	RequiresFcvTag string   `yaml:"requires_fcv_tag"`
}

// TestDiscovery lists the tests belonging to a suite.
type TestDiscovery struct {
	SuiteName string   `yaml:"suite_name"`
	Tests     []string `yaml:"tests"`
}

// SuiteConfig is a resmoke suite configuration.
type SuiteConfig struct {
	Description string   `yaml:"description"`
	MatrixSuite bool     `yaml:"matrix_suite"`
	TestKind    string   `yaml:"test_kind"`
	Selector    Selector `yaml:"selector"`
	Executor    Executor `yaml:"executor"`
}

// Selector picks the files a suite runs.
type Selector struct {
	Roots        []string `yaml:"roots"`
	ExcludeFiles []string `yaml:"exclude_files"`
}

// Executor configures how a suite is run.
type Executor struct {
	Config  ExecutorConfig `yaml:"config"`
	Fixture Fixture        `yaml:"fixture"`
}

type ExecutorConfig struct {
	ShellOptions ShellOptions `yaml:"shell_options"`
}

type ShellOptions struct {
	GlobalVars GlobalVars `yaml:"global_vars"`
	NoDB       string     `yaml:"nodb"`
}

type GlobalVars struct {
	TestData TestData `yaml:"TestData"`
}

type TestData struct {
	RoleGraphInvalidationIsFatal bool `yaml:"roleGraphInvalidationIsFatal"`
}

// Fixture is the runtime topology a suite executes against.
type Fixture struct {
	Class    string `yaml:"class"`
	NumNodes int    `yaml:"num_nodes"`
}

// Package resmoke renders the canned documents the resmoke mock answers
// with. The real resmoke compiles suite configurations and discovers tests
// across a source tree; the mock serves one fixed suite so the
// task-generation system can be exercised without it.
package resmoke

import (
	"fmt"
	"io"

	"genmocks/pkg/model"

	"gopkg.in/yaml.v3"
)

// The closed set of subcommands the mock answers.
const (
	SubcommandMultiversionConfig = "multiversion-config"
	SubcommandSuiteConfig        = "suiteconfig"
	SubcommandTestDiscovery      = "test-discovery"
)

// SuiteName is the one suite this mock knows about.
const SuiteName = "my_suite"

const testCount = 15

// UnknownSubcommandError reports a subcommand outside the set the mock
// answers.
type UnknownSubcommandError struct {
	Name string
}

func (e *UnknownSubcommandError) Error() string {
	return fmt.Sprintf("unknown subcommand: %s", e.Name)
}

// SuiteConfig returns the configuration of the canned suite.
func SuiteConfig() model.SuiteConfig {
	return model.SuiteConfig{
		Description: "Mock suite configuration served in place of resmoke.",
		MatrixSuite: false,
		TestKind:    "js_test",
		Selector: model.Selector{
			Roots:        []string{"jstests/auth/*.js"},
			ExcludeFiles: []string{"jstests/auth/repl.js"},
		},
		Executor: model.Executor{
			Config: model.ExecutorConfig{
				ShellOptions: model.ShellOptions{
					GlobalVars: model.GlobalVars{
						TestData: model.TestData{
							RoleGraphInvalidationIsFatal: true,
						},
					},
					NoDB: "",
				},
			},
			Fixture: model.Fixture{
				Class:    "ReplicaSetFixture",
				NumNodes: 3,
			},
		},
	}
}

// WriteSuiteConfig writes the canned suite configuration to w as YAML.
func WriteSuiteConfig(w io.Writer) error {
	return writeYAML(w, SuiteConfig())
}

// TestDiscovery returns the canned test listing: testCount tests in
// ascending numeric order.
func TestDiscovery() model.TestDiscovery {
	doc := model.TestDiscovery{SuiteName: SuiteName}
	for i := 0; i < testCount; i++ {
		doc.Tests = append(doc.Tests, fmt.Sprintf("tests/data/tests/test_%d.js", i))
	}
	return doc
}

// WriteTestDiscovery writes the canned test listing to w as YAML.
func WriteTestDiscovery(w io.Writer) error {
	return writeYAML(w, TestDiscovery())
}

func writeYAML(w io.Writer, doc any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshaling document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("error writing document: %w", err)
	}
	return nil
}

// Package burnin renders the canned burn-in discovery document. The real
// burn-in tool inspects the repository for new or changed tests; this mock
// gives the task-generation system a stable answer instead: the same three
// tasks, each pointing at the same test file.
package burnin

import (
	"fmt"
	"io"

	"genmocks/pkg/model"

	"gopkg.in/yaml.v3"
)

const testFile = "tests/data/tests/test_0.js"

var taskNames = []string{
	"jsCore",
	"sharding_jscore_passthrough",
	"replica_sets_jscore_passthrough",
}

// DiscoveredTasks returns the canned discovery document.
func DiscoveredTasks() model.DiscoveredTasks {
	doc := model.DiscoveredTasks{}
	for _, name := range taskNames {
		doc.DiscoveredTasks = append(doc.DiscoveredTasks, model.DiscoveredTask{
			TaskName: name,
			TestList: []string{testFile},
		})
	}
	return doc
}

// Discover writes the discovery document to w as YAML.
func Discover(w io.Writer) error {
	data, err := yaml.Marshal(DiscoveredTasks())
	if err != nil {
		return fmt.Errorf("error marshaling discovered tasks: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("error writing discovered tasks: %w", err)
	}
	return nil
}

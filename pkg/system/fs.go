package system

import (
	"fmt"

	"github.com/spf13/afero"
)

// AppFs is the filesystem all file operations go through.
// Tests swap in an in-memory implementation.
var AppFs afero.Fs = afero.NewOsFs()

// CreateIfAbsent writes content to path unless a file already exists there.
// An existing file is never touched, whatever its content. It reports
// whether the file was created.
func CreateIfAbsent(fs afero.Fs, path string, content []byte) (bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, fmt.Errorf("error checking %s: %w", path, err)
	}
	if exists {
		return false, nil
	}
	if err := afero.WriteFile(fs, path, content, 0644); err != nil {
		return false, fmt.Errorf("error writing %s: %w", path, err)
	}
	return true, nil
}

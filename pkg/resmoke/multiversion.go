package resmoke

import (
	"fmt"

	"genmocks/pkg/log"
	"genmocks/pkg/system"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
)

// DefaultMultiversionFile is where WriteMultiversionConfig writes when the
// caller does not override the path.
const DefaultMultiversionFile = "multiversion-config.yml"

// multiversionDoc is written verbatim rather than marshaled from
// model.MultiversionConfig: the file format pins these exact bytes,
// zero-indented sequence included.
const multiversionDoc = `last_versions:
- last_lts
- last_continuous
requires_fcv_tag: requires_fcv_51,requires_fcv_52,requires_fcv_53,requires_fcv_60
`

// MultiversionDoc returns the multiversion config file body.
func MultiversionDoc() string {
	return multiversionDoc
}

// WriteMultiversionConfig creates the multiversion config file at path
// unless it already exists. An existing file is left untouched; if its
// content has drifted from the canned document, a warning with a diff is
// logged so a stale file in a reused working directory is visible.
func WriteMultiversionConfig(fs afero.Fs, path string, logger log.Logger) error {
	created, err := system.CreateIfAbsent(fs, path, []byte(multiversionDoc))
	if err != nil {
		return err
	}
	if created {
		logger.Debug("Wrote multiversion config", "path", path)
		return nil
	}

	existing, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("error reading existing %s: %w", path, err)
	}
	if string(existing) == multiversionDoc {
		logger.Debug("Multiversion config already present", "path", path)
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(existing), multiversionDoc, false)
	logger.Warn("Existing multiversion config differs from the canned document, leaving it untouched",
		"path", path,
		"diff", dmp.DiffPrettyText(diffs))
	return nil
}

package layout

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
)

// Requirement is a project-relative path that must exist before a platform
// can be generated.
type Requirement struct {
	Path string
	Dir  bool
}

// Dir requires a directory at path.
func Dir(path string) Requirement { return Requirement{Path: path, Dir: true} }

// File requires a regular file at path.
func File(path string) Requirement { return Requirement{Path: path} }

// Verify checks every requirement below root and reports all missing
// entries in a single ErrProjectLayout.
func Verify(fsys afero.Fs, root string, reqs ...Requirement) error {
	var missing []string

	for _, req := range reqs {
		full := filepath.Join(root, req.Path)
		info, err := fsys.Stat(full)
		switch {
		case err != nil:
			missing = append(missing, req.Path)
		case req.Dir && !info.IsDir():
			missing = append(missing, req.Path+" (not a directory)")
		case !req.Dir && info.IsDir():
			missing = append(missing, req.Path+" (is a directory)")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s under %s", splasherrors.ErrProjectLayout, strings.Join(missing, ", "), root)
	}
	return nil
}

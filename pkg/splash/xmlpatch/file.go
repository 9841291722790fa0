package xmlpatch

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/provide-io/splashgen/internal/layout"
	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
)

// Skeletons for patch targets that may not exist yet.
const (
	ResourcesSkeleton = `<?xml version="1.0" encoding="utf-8"?>
<resources>
</resources>
`

	PlistSkeleton = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
</dict>
</plist>
`
)

// Transform is a pure edit of a file's content.
type Transform func(src []byte) ([]byte, error)

// Outcome describes what ApplyFile did to the file.
type Outcome int

const (
	Unchanged Outcome = iota
	Updated
	Created
)

func (o Outcome) String() string {
	switch o {
	case Updated:
		return "updated"
	case Created:
		return "created"
	default:
		return "unchanged"
	}
}

// ApplyFile runs transforms over the file at path and writes the result if
// it differs. A missing file starts from skeleton; with an empty skeleton
// it is an ErrProjectLayout. If any transform fails, nothing is written.
func ApplyFile(fsys afero.Fs, path, skeleton string, logger hclog.Logger, transforms ...Transform) (Outcome, error) {
	original, err := afero.ReadFile(fsys, path)
	created := false
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && skeleton != "":
		original = []byte(skeleton)
		created = true
	case errors.Is(err, fs.ErrNotExist):
		return Unchanged, fmt.Errorf("%w: %s does not exist", splasherrors.ErrProjectLayout, path)
	default:
		return Unchanged, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := original
	for _, transform := range transforms {
		content, err = transform(content)
		if err != nil {
			logger.Warn("⚠️ leaving file unmodified", "path", path, "error", err)
			return Unchanged, fmt.Errorf("%s: %w", path, err)
		}
	}

	if !created && bytes.Equal(content, original) {
		logger.Debug("resource already up to date", "path", path)
		return Unchanged, nil
	}

	if err := layout.WriteFile(fsys, path, content, logger); err != nil {
		return Unchanged, err
	}

	if created {
		logger.Debug("resource created", "path", path)
		return Created, nil
	}
	logger.Debug("resource patched", "path", path)
	return Updated, nil
}

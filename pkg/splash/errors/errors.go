// Package errors holds the sentinel errors shared by every splashgen stage.
// Callers classify failures with errors.Is; every stage wraps these with
// context using fmt.Errorf("...: %w").
package errors

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors ⚙️
	ErrConfig = errors.New("❌ invalid splash configuration")

	// Project errors 📁
	ErrProjectLayout = errors.New("❌ expected project layout not found")

	// Image errors 🖼️
	ErrImage        = errors.New("❌ image processing failed")
	ErrInvalidColor = fmt.Errorf("%w: invalid hex color", ErrImage)

	// Resource patch errors 🩹
	ErrPatchAnchorNotFound = errors.New("⚠️ patch anchor not found")
	ErrMalformedResource   = errors.New("⚠️ resource file could not be parsed")

	// Optional assets 🎞️
	ErrAssetSkipped = errors.New("⚠️ optional asset skipped")
)

// IsWarning reports whether err describes a condition that leaves the
// current platform usable: a patch that could not find its anchor, a
// resource that could not be parsed, or an optional asset that was skipped.
func IsWarning(err error) bool {
	return errors.Is(err, ErrPatchAnchorNotFound) ||
		errors.Is(err, ErrMalformedResource) ||
		errors.Is(err, ErrAssetSkipped)
}

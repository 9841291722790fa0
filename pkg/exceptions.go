package pkg

import splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"

var (
	// Configuration errors ⚙️
	ErrConfig = splasherrors.ErrConfig

	// Project errors 📁
	ErrProjectLayout = splasherrors.ErrProjectLayout

	// Image errors 🖼️
	ErrImage        = splasherrors.ErrImage
	ErrInvalidColor = splasherrors.ErrInvalidColor

	// Resource patch errors 🩹
	ErrPatchAnchorNotFound = splasherrors.ErrPatchAnchorNotFound
	ErrMalformedResource   = splasherrors.ErrMalformedResource
	ErrAssetSkipped        = splasherrors.ErrAssetSkipped
)

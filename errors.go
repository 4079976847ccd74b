package kumiko

import (
	"github.com/pkg/errors"

	"github.com/louxiu/kumiko/vision"
)

// Sentinel errors for the fatal-configuration and decode-failure cases
// named in spec.md §7. Wrap with github.com/pkg/errors so callers can
// recover the sentinel via errors.Is after unwrapping.
var (
	// ErrNotAnImage is returned (wrapped) when the input bytes are not a
	// recognisable image format. It is the same value as
	// vision.ErrNotAnImage, so a decode failure reported by the default
	// backend matches it under errors.Is.
	ErrNotAnImage = vision.ErrNotAnImage

	// ErrInvalidNumbering is returned when Config.Numbering is neither
	// "ltr" nor "rtl".
	ErrInvalidNumbering = errors.New("kumiko: unknown numbering")

	// ErrInvalidLicense is returned when a "<image>.license" sidecar exists
	// but does not contain valid JSON.
	ErrInvalidLicense = errors.New("kumiko: license sidecar is not valid JSON")
)

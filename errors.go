package geocon

import "github.com/geocongrid/geocon/internal/gcerrors"

// Error sentinels, one per failure code a loader or writer can return.
// Re-exported from internal/gcerrors so both the public API and the
// internal packages that detect these conditions share one set of
// values - callers can errors.Is against them directly.
var (
	ErrNoMemory          = gcerrors.ErrNoMemory
	ErrIOError           = gcerrors.ErrIOError
	ErrNullParameter     = gcerrors.ErrNullParameter
	ErrInvalidExtent     = gcerrors.ErrInvalidExtent
	ErrFileNotFound      = gcerrors.ErrFileNotFound
	ErrInvalidFile       = gcerrors.ErrInvalidFile
	ErrCannotOpenFile    = gcerrors.ErrCannotOpenFile
	ErrUnknownFiletype   = gcerrors.ErrUnknownFiletype
	ErrUnexpectedEOF     = gcerrors.ErrUnexpectedEOF
	ErrInvalidTokenCount = gcerrors.ErrInvalidTokenCount
)

package geocoding

import "errors"

// Error kinds surfaced to submitters. Messages are user-facing; handlers pass
// them through as field-level errors on the address input. None of these are
// retried internally — retry policy belongs to the caller.
var (
	ErrNotConfigured = errors.New("Geocoding service not configured. Please contact admin.")
	ErrRateLimited   = errors.New("Geocoding rate limit exceeded. Please try again later.")
	ErrUnavailable   = errors.New("Geocoding service unavailable. Please try again.")
	ErrNotFound      = errors.New("Address not found. Please check the address and try again.")
	ErrOutOfRegion   = errors.New("Address must be within the Louisville Metro area.")
)

// IsAddressError reports whether err is one of the geocoding error kinds that
// should be shown against the address field (as opposed to an unexpected
// transport failure).
func IsAddressError(err error) bool {
	for _, kind := range []error{ErrNotConfigured, ErrRateLimited, ErrUnavailable, ErrNotFound, ErrOutOfRegion} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

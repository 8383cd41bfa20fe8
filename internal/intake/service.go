package intake

import (
	"context"
	"errors"
	"strconv"

	"metrodir-backend/internal/domain"
	"metrodir-backend/internal/geocoding"
	"metrodir-backend/internal/pkg/validation"
	"metrodir-backend/internal/similarity"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrSubmissionFailed is the generic retry-able outcome for unexpected
// failures during intake. The underlying cause is logged for operators, not
// shown to the submitter.
var ErrSubmissionFailed = errors.New("An unexpected error occurred. Please try again.")

// ValidationError carries field-keyed messages back to the form.
type ValidationError struct {
	Fields  validation.FieldErrors
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Outcome is a successful intake result. Duplicates are advisory hits at or
// above the listing threshold, shown to the submitter but never blocking.
type Outcome struct {
	Submission *domain.Submission
	Duplicates []similarity.Match
}

// Service orchestrates validation, geocoding, duplicate detection and
// persistence of a pending submission. It is the only writer that creates
// Submission rows.
type Service struct {
	DB       *gorm.DB
	Geocoder geocoding.Client
	Matcher  *similarity.Matcher
}

// Submit runs the intake pipeline. The returned error is either a
// *ValidationError (field-keyed, including geocoding failures mapped to the
// address field) or ErrSubmissionFailed. Nothing is persisted unless every
// prior step succeeded, so an abandoned request leaves no partial row.
func (s *Service) Submit(ctx context.Context, in Input) (*Outcome, error) {
	if errs := validate(in); !errs.Empty() {
		return nil, &ValidationError{Fields: errs, Message: "Please fix the errors below."}
	}

	geocoded, err := s.Geocoder.Geocode(ctx, in.Address)
	if err != nil {
		if geocoding.IsAddressError(err) {
			return nil, &ValidationError{
				Fields:  validation.FieldErrors{"address": {err.Error()}},
				Message: "Address validation failed.",
			}
		}
		log.Error().Err(err).Msg("geocoding failed during intake")
		return nil, ErrSubmissionFailed
	}

	// Advisory scan; the matcher degrades to empty on failure.
	matches := s.Matcher.FindSimilar(ctx, in.Name, similarity.DefaultThreshold)

	sub := &domain.Submission{
		Name:         in.Name,
		Organization: optional(in.Organization),
		Email:        in.Email,
		Phone:        optional(in.Phone),
		Role:         in.Role,
		Specialties:  in.Specialties,
		Website:      optional(in.Website),
		Description:  optional(in.Description),
		// The geocoder's normalized address supersedes what the user typed.
		Address:          geocoded.FormattedAddress,
		FormattedAddress: geocoded.FormattedAddress,
		Location:         domain.NewPoint(geocoded.Longitude, geocoded.Latitude),
		Status:           domain.StatusPending,
	}

	// A high-confidence match is recorded for moderator judgment but never
	// blocks the submission. Matches arrive best-first.
	for _, m := range matches {
		if m.Similarity > similarity.DuplicateThreshold {
			id := m.ID
			score := strconv.FormatFloat(m.Similarity, 'f', -1, 64)
			sub.DuplicateOf = &id
			sub.SimilarityScore = &score
			break
		}
	}

	if err := s.DB.WithContext(ctx).Create(sub).Error; err != nil {
		log.Error().Err(err).Msg("submission insert failed")
		return nil, ErrSubmissionFailed
	}

	return &Outcome{Submission: sub, Duplicates: matches}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

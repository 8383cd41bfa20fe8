// Package similarity finds approved listings whose names fuzzily match a
// candidate name, using postgres pg_trgm trigram similarity. Matching is
// advisory: organization names vary by punctuation, abbreviation and suffixes
// ("Co.", "LLC"), so this is deliberately approximate, and a failed lookup
// must never block a submission.
package similarity

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	// DefaultThreshold catches near matches worth showing to the submitter,
	// e.g. "Louisville Masonry" vs "Louisville Masonry Co".
	DefaultThreshold = 0.4
	// DuplicateThreshold is the high-confidence score at which a submission
	// is flagged (never blocked) for moderator judgment.
	DuplicateThreshold = 0.7

	maxResults = 5
)

// Match is one fuzzy name hit against an approved listing.
type Match struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Similarity float64   `json:"similarity"`
}

// Store runs the underlying trigram query. Abstracted so tests can substitute
// a double for the postgres-only similarity() function.
type Store interface {
	SimilarNames(ctx context.Context, name string, threshold float64, limit int) ([]Match, error)
}

// GormStore queries approved listings with pg_trgm. Pending, draft and
// rejected rows are not canonical and are never matched against.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) SimilarNames(ctx context.Context, name string, threshold float64, limit int) ([]Match, error) {
	var matches []Match
	err := s.DB.WithContext(ctx).Raw(`
		SELECT id, name, role, similarity(name, ?) AS similarity
		FROM listings
		WHERE status = 'approved' AND similarity(name, ?) > ?
		ORDER BY similarity DESC
		LIMIT ?`, name, name, threshold, limit).Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Matcher is the duplicate-detection entry point.
type Matcher struct {
	Store Store
}

// FindSimilar returns up to five approved listings with name similarity
// strictly above threshold, best first. Any store failure degrades to an
// empty result; the cause is logged for operators.
func (m *Matcher) FindSimilar(ctx context.Context, name string, threshold float64) []Match {
	matches, err := m.Store.SimilarNames(ctx, name, threshold, maxResults)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("duplicate detection query failed")
		return nil
	}
	return matches
}

// CheckForDuplicate returns the single best high-confidence match, or nil.
func (m *Matcher) CheckForDuplicate(ctx context.Context, name string) *Match {
	matches := m.FindSimilar(ctx, name, DuplicateThreshold)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

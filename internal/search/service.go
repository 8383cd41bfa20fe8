// Package search is the read side of the public directory: full-text search
// with a trigram fallback for typo tolerance, plus category and location
// filtering. Only approved listings are ever returned.
package search

import (
	"context"
	"strings"

	"metrodir-backend/internal/domain"
)

const resultLimit = 100

// FallbackThreshold is the trigram similarity floor for the typo-tolerance
// path, lower than duplicate detection because recall matters more here.
const FallbackThreshold = 0.3

// Params are the public search inputs, all optional.
type Params struct {
	Query    string
	Role     string
	Location string
}

// Filters are the validated role/location restrictions applied identically on
// every branch before text ranking.
type Filters struct {
	Role     string // empty means no role filter
	Location string // case-insensitive substring of the stored address
}

// Store runs the three query shapes against the listings table.
type Store interface {
	// FullText matches the derived search index with natural-language term
	// parsing, ranked by text relevance descending.
	FullText(ctx context.Context, query string, f Filters) ([]domain.Listing, error)
	// BySimilarity is the trigram name-similarity fallback, best first.
	BySimilarity(ctx context.Context, query string, f Filters) ([]domain.Listing, error)
	// ByName returns filtered listings alphabetically.
	ByName(ctx context.Context, f Filters) ([]domain.Listing, error)
}

type Service struct {
	Store Store
}

// Search applies the base approved filter plus role/location, then picks a
// text strategy: no query -> alphabetical; query -> full-text, falling back
// to trigram similarity only when full-text finds nothing (never merged).
// An unrecognized role is silently ignored, defending against stale or forged
// query parameters.
func (s *Service) Search(ctx context.Context, p Params) ([]domain.Listing, error) {
	f := Filters{Location: strings.TrimSpace(p.Location)}
	if domain.IsValidCategory(p.Role) {
		f.Role = p.Role
	}

	query := strings.TrimSpace(p.Query)
	if query == "" {
		return s.Store.ByName(ctx, f)
	}

	results, err := s.Store.FullText(ctx, query, f)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		return results, nil
	}
	return s.Store.BySimilarity(ctx, query, f)
}

package search

import (
	"context"
	"strings"

	"metrodir-backend/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store against postgres. FullText and BySimilarity need
// the tsvector column and pg_trgm from database.Bootstrap; ByName is portable.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) scoped(ctx context.Context, f Filters) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&domain.Listing{}).
		Where("status = ?", domain.StatusApproved)
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.Location != "" {
		q = q.Where("lower(address) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	return q.Limit(resultLimit)
}

func (s *GormStore) FullText(ctx context.Context, query string, f Filters) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := s.scoped(ctx, f).
		Where("search_vector @@ plainto_tsquery('english', ?)", query).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:  "ts_rank(search_vector, plainto_tsquery('english', ?)) DESC",
			Vars: []interface{}{query},
		}}).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *GormStore) BySimilarity(ctx context.Context, query string, f Filters) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := s.scoped(ctx, f).
		Where("similarity(name, ?) > ?", query, FallbackThreshold).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:  "similarity(name, ?) DESC",
			Vars: []interface{}{query},
		}}).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *GormStore) ByName(ctx context.Context, f Filters) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := s.scoped(ctx, f).Order("name ASC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

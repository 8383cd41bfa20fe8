// Package geoquery feeds map rendering: coordinate extraction for every
// visible listing, optionally restricted to a viewport rectangle. Failures
// degrade to an empty result so the map never takes the page down with it.
package geoquery

import (
	"context"

	"metrodir-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MapPoint is the minimal shape a map pin needs.
type MapPoint struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// Store fetches the mappable listings: approved, located, name ascending.
type Store interface {
	ApprovedWithLocation(ctx context.Context) ([]domain.Listing, error)
}

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) ApprovedWithLocation(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := s.DB.WithContext(ctx).
		Where("status = ? AND location IS NOT NULL", domain.StatusApproved).
		Order("name ASC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

type Service struct {
	Store Store
}

// AllWithCoordinates returns every visible listing as a map point. Empty on
// any failure; the cause is logged for operators.
func (s *Service) AllWithCoordinates(ctx context.Context) []MapPoint {
	listings, err := s.Store.ApprovedWithLocation(ctx)
	if err != nil {
		log.Error().Err(err).Msg("map coordinate query failed")
		return []MapPoint{}
	}
	return toPoints(listings)
}

// InBounds restricts the set to the given viewport rectangle. Containment is
// inclusive on all four edges: a listing exactly on a boundary is in view.
func (s *Service) InBounds(ctx context.Context, north, south, east, west float64) []MapPoint {
	listings, err := s.Store.ApprovedWithLocation(ctx)
	if err != nil {
		log.Error().Err(err).Msg("map bounds query failed")
		return []MapPoint{}
	}
	viewport := orb.Bound{Min: orb.Point{west, south}, Max: orb.Point{east, north}}
	bounded := listings[:0]
	for _, l := range listings {
		if viewport.Contains(orb.Point(*l.Location)) {
			bounded = append(bounded, l)
		}
	}
	return toPoints(bounded)
}

func toPoints(listings []domain.Listing) []MapPoint {
	points := make([]MapPoint, 0, len(listings))
	for _, l := range listings {
		points = append(points, MapPoint{
			ID:        l.ID,
			Name:      l.Name,
			Role:      l.Role,
			Phone:     l.Phone,
			Latitude:  l.Location.Lat(),
			Longitude: l.Location.Lon(),
		})
	}
	return points
}

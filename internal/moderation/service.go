package moderation

import (
	"context"
	"errors"
	"time"

	"metrodir-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUnauthorized    = errors.New("Unauthorized")
	ErrNotFound        = errors.New("Submission not found")
	ErrAlreadyReviewed = errors.New("Submission has already been reviewed")
)

// Service owns the pending -> approved|rejected state machine. It is the only
// writer that mutates Submission.status or creates Listings from submissions.
type Service struct {
	DB *gorm.DB
}

// PendingQueue lists unreviewed submissions oldest-first for the admin table.
func (s *Service) PendingQueue(ctx context.Context) ([]domain.Submission, error) {
	var subs []domain.Submission
	err := s.DB.WithContext(ctx).
		Where("status = ?", domain.StatusPending).
		Order("submitted_at ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// Approve copies the submission into a new approved Listing and stamps the
// submission, both inside one transaction. The status-guarded update makes
// concurrent reviews race-safe: exactly one caller wins, the rest observe
// AlreadyReviewed and no second Listing appears.
func (s *Service) Approve(ctx context.Context, id uuid.UUID, reviewer string) (*domain.Listing, error) {
	if reviewer == "" {
		return nil, ErrUnauthorized
	}
	sub, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	var listing *domain.Listing
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&domain.Submission{}).
			Where("id = ? AND status = ?", id, domain.StatusPending).
			Updates(map[string]interface{}{
				"status":      domain.StatusApproved,
				"reviewed_at": now,
				"reviewed_by": reviewer,
				"updated_at":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyReviewed
		}

		address := sub.FormattedAddress
		if address == "" {
			address = sub.Address
		}
		listing = &domain.Listing{
			Name:        sub.Name,
			Description: sub.Description,
			Role:        sub.Role,
			Specialties: sub.Specialties,
			Address:     &address,
			Phone:       sub.Phone,
			Email:       &sub.Email,
			Website:     sub.Website,
			Location:    sub.Location,
			// Forced regardless of anything stored on the submission.
			Status: domain.StatusApproved,
		}
		return tx.Create(listing).Error
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// Reject marks the submission rejected with optional moderator notes. No
// Listing is created.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, reviewer string, notes *string) error {
	if reviewer == "" {
		return ErrUnauthorized
	}
	if _, err := s.fetch(ctx, id); err != nil {
		return err
	}

	now := time.Now()
	res := s.DB.WithContext(ctx).Model(&domain.Submission{}).
		Where("id = ? AND status = ?", id, domain.StatusPending).
		Updates(map[string]interface{}{
			"status":      domain.StatusRejected,
			"admin_notes": notes,
			"reviewed_at": now,
			"reviewed_by": reviewer,
			"updated_at":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyReviewed
	}
	return nil
}

// fetch distinguishes NotFound from AlreadyReviewed before any write runs.
func (s *Service) fetch(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	var sub domain.Submission
	if err := s.DB.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sub.Status != domain.StatusPending {
		return nil, ErrAlreadyReviewed
	}
	return &sub, nil
}

package listings

import (
	"context"
	"errors"
	"unicode/utf8"

	"metrodir-backend/internal/domain"
	"metrodir-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("Listing not found")

// AdminInput is the admin create/edit payload. Unlike public intake there is
// no geocoding step; admins may enter listings with or without an address.
type AdminInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Role        string   `json:"role"`
	Specialties []string `json:"specialties"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Website     string   `json:"website"`
	ImageURL    string   `json:"image_url"`
	Status      string   `json:"status"`
}

func validateAdmin(in AdminInput) validation.FieldErrors {
	errs := validation.FieldErrors{}
	switch n := utf8.RuneCountInString(in.Name); {
	case n < 2:
		errs.Add("name", "Name must be at least 2 characters")
	case n > 255:
		errs.Add("name", "Name must be at most 255 characters")
	}
	if !domain.IsValidCategory(in.Role) {
		errs.Add("role", "Select a valid category")
	}
	if len(in.Specialties) == 0 {
		errs.Add("specialties", "Select at least one specialty")
	}
	if utf8.RuneCountInString(in.Address) > 500 {
		errs.Add("address", "Address must be at most 500 characters")
	}
	if utf8.RuneCountInString(in.Phone) > 20 {
		errs.Add("phone", "Phone must be at most 20 characters")
	}
	if in.Email != "" && !validation.IsValidEmail(in.Email) {
		errs.Add("email", "Invalid email address")
	}
	if in.Website != "" && !validation.IsValidURL(in.Website) {
		errs.Add("website", "Invalid URL")
	}
	if in.ImageURL != "" && !validation.IsValidURL(in.ImageURL) {
		errs.Add("image_url", "Invalid URL")
	}
	if in.Status != "" && !domain.IsValidStatus(in.Status) {
		errs.Add("status", "Invalid status")
	}
	return errs
}

type Service struct {
	DB *gorm.DB
}

// GetApproved lists the public directory alphabetically.
func (s *Service) GetApproved(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := s.DB.WithContext(ctx).
		Where("status = ?", domain.StatusApproved).
		Order("name ASC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// GetByID returns a listing for public detail pages. Rows that exist but are
// not approved read as not found.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	var listing domain.Listing
	if err := s.DB.WithContext(ctx).First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if listing.Status != domain.StatusApproved {
		return nil, ErrNotFound
	}
	return &listing, nil
}

// Create inserts a listing directly. Status defaults to approved: admin
// entries skip moderation.
func (s *Service) Create(ctx context.Context, in AdminInput) (*domain.Listing, validation.FieldErrors, error) {
	if errs := validateAdmin(in); !errs.Empty() {
		return nil, errs, nil
	}
	status := in.Status
	if status == "" {
		status = domain.StatusApproved
	}
	listing := &domain.Listing{
		Name:        in.Name,
		Description: optional(in.Description),
		Role:        in.Role,
		Specialties: in.Specialties,
		Address:     optional(in.Address),
		Phone:       optional(in.Phone),
		Email:       optional(in.Email),
		Website:     optional(in.Website),
		ImageURL:    optional(in.ImageURL),
		Status:      status,
	}
	if err := s.DB.WithContext(ctx).Create(listing).Error; err != nil {
		return nil, nil, err
	}
	return listing, nil, nil
}

// Update replaces the editable fields of an existing listing.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in AdminInput) (*domain.Listing, validation.FieldErrors, error) {
	if errs := validateAdmin(in); !errs.Empty() {
		return nil, errs, nil
	}
	var listing domain.Listing
	if err := s.DB.WithContext(ctx).First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.StatusApproved
	}
	listing.Name = in.Name
	listing.Description = optional(in.Description)
	listing.Role = in.Role
	listing.Specialties = in.Specialties
	listing.Address = optional(in.Address)
	listing.Phone = optional(in.Phone)
	listing.Email = optional(in.Email)
	listing.Website = optional(in.Website)
	listing.ImageURL = optional(in.ImageURL)
	listing.Status = status
	if err := s.DB.WithContext(ctx).Save(&listing).Error; err != nil {
		return nil, nil, err
	}
	return &listing, nil, nil
}

// Delete removes a listing outright.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&domain.Listing{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

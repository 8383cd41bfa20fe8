package intake

import (
	"unicode/utf8"

	"metrodir-backend/internal/domain"
	"metrodir-backend/internal/pkg/validation"
)

// Input is the public submission form payload.
type Input struct {
	Name         string   `json:"name"`
	Organization string   `json:"organization"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Role         string   `json:"role"`
	Specialties  []string `json:"specialties"`
	Website      string   `json:"website"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
}

// validate applies the public form schema. Optional fields accept the empty
// string; everything else is checked against the fixed constraints.
func validate(in Input) validation.FieldErrors {
	errs := validation.FieldErrors{}

	switch n := utf8.RuneCountInString(in.Name); {
	case n < 2:
		errs.Add("name", "Name must be at least 2 characters")
	case n > 255:
		errs.Add("name", "Name must be at most 255 characters")
	}
	if utf8.RuneCountInString(in.Organization) > 255 {
		errs.Add("organization", "Organization must be at most 255 characters")
	}
	if !validation.IsValidEmail(in.Email) {
		errs.Add("email", "Invalid email address")
	}
	if in.Phone != "" {
		if !validation.IsValidPhone(in.Phone) {
			errs.Add("phone", "Invalid phone number format")
		} else if utf8.RuneCountInString(in.Phone) < 7 {
			errs.Add("phone", "Phone number too short")
		} else if utf8.RuneCountInString(in.Phone) > 20 {
			errs.Add("phone", "Phone number too long")
		}
	}
	if !domain.IsValidCategory(in.Role) {
		errs.Add("role", "Select a valid category")
	}
	if len(in.Specialties) == 0 {
		errs.Add("specialties", "Select at least one specialty")
	}
	if in.Website != "" && !validation.IsValidURL(in.Website) {
		errs.Add("website", "Invalid URL")
	}
	if utf8.RuneCountInString(in.Description) > 1000 {
		errs.Add("description", "Description must be under 1000 characters")
	}
	if utf8.RuneCountInString(in.Address) < 5 {
		errs.Add("address", "Please enter a full address")
	}

	return errs
}

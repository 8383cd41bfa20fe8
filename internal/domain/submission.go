package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission is an unmoderated candidate entry with its own lifecycle.
// Intake creates it with status pending; moderation performs exactly one
// terminal transition. Approval copies the data into a new Listing row, it
// never reuses this row, so the audit trail of what was submitted stays
// append-only.
type Submission struct {
	ID               uuid.UUID                   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name             string                      `gorm:"column:name;size:255;not null" json:"name"`
	Organization     *string                     `gorm:"column:organization;size:255" json:"organization"`
	Email            string                      `gorm:"column:email;size:255;not null" json:"email"`
	Phone            *string                     `gorm:"column:phone;size:20" json:"phone"`
	Role             string                      `gorm:"column:role;size:50;not null" json:"role"`
	Specialties      datatypes.JSONSlice[string] `gorm:"column:specialties" json:"specialties"`
	Website          *string                     `gorm:"column:website;size:500" json:"website"`
	Description      *string                     `gorm:"column:description" json:"description"`
	Address          string                      `gorm:"column:address;size:500;not null" json:"address"`
	FormattedAddress string                      `gorm:"column:formatted_address;size:500" json:"formatted_address"`
	Location         *Point                      `gorm:"column:location" json:"location"`
	Status           string                      `gorm:"column:status;size:20;not null;default:'pending';index" json:"status"`
	DuplicateOf      *uuid.UUID                  `gorm:"column:duplicate_of;type:uuid" json:"duplicate_of"`
	// SimilarityScore is a decimal kept as text at the persistence boundary;
	// in-process code works with float64 and converts on write.
	SimilarityScore *string    `gorm:"column:similarity_score;size:20" json:"similarity_score"`
	AdminNotes      *string    `gorm:"column:admin_notes;size:1000" json:"admin_notes"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`
	ReviewedBy      *string    `gorm:"column:reviewed_by;size:255" json:"reviewed_by"`
	SubmittedAt     time.Time  `gorm:"column:submitted_at;autoCreateTime" json:"submitted_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Submission) TableName() string { return "submissions" }

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

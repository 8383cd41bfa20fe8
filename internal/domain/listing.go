package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project is a portfolio entry on a listing. Entries have no identity beyond
// their position in the list.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Listing is a published directory entry. Public queries only ever see rows
// with status approved and a non-null location.
//
// The search_vector tsvector column is owned by the persistence layer (a
// trigger installed by database.Bootstrap); it is deliberately absent here so
// application code can never write it.
type Listing struct {
	ID          uuid.UUID                    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string                       `gorm:"column:name;size:255;not null" json:"name"`
	Description *string                      `gorm:"column:description" json:"description"`
	Role        string                       `gorm:"column:role;size:50;not null;index" json:"role"`
	Specialties datatypes.JSONSlice[string]  `gorm:"column:specialties" json:"specialties"`
	Address     *string                      `gorm:"column:address;size:500" json:"address"`
	Phone       *string                      `gorm:"column:phone;size:20" json:"phone"`
	Email       *string                      `gorm:"column:email;size:255" json:"email"`
	Website     *string                      `gorm:"column:website;size:500" json:"website"`
	ImageURL    *string                      `gorm:"column:image_url;size:500" json:"image_url"`
	Location    *Point                       `gorm:"column:location" json:"location"`
	Projects    datatypes.JSONSlice[Project] `gorm:"column:projects" json:"projects"`
	Status      string                       `gorm:"column:status;size:20;not null;default:'draft';index" json:"status"`
	CreatedAt   time.Time                    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time                    `gorm:"column:updated_at" json:"updated_at"`
}

func (Listing) TableName() string { return "listings" }

// BeforeCreate assigns an id when the database has no uuid default (sqlite).
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

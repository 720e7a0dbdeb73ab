package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Freelancer is the authenticating principal. Every other entity is managed
// on behalf of a freelancer.
type Freelancer struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string    `gorm:"not null" json:"name"`
	Email  string    `gorm:"uniqueIndex;not null" json:"email"`
	Mobile string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"mobile"`

	Password string `gorm:"not null" json:"-"`

	Skills       datatypes.JSONSlice[string] `json:"skills"`
	Location     string                      `json:"location"`
	ProfileImage string                      `json:"profileImage"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *Freelancer) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}

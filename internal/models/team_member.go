package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TeamMember struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Email string    `gorm:"uniqueIndex;not null" json:"email"`
	Role  string    `gorm:"not null" json:"role"`

	Bio          string `gorm:"type:text" json:"bio"`
	ProfileImage string `json:"profileImage"`
	Mobile       string `gorm:"type:varchar(30)" json:"mobile"`
	Status       string `gorm:"type:varchar(30)" json:"status"`

	// Kept in lockstep with Project.AssignedTo: a project id is in this list
	// iff this member's id is in that project's assignedTo list.
	AssignedProjects datatypes.JSONSlice[uuid.UUID] `json:"assignedProjects"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

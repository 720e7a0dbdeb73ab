package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const ProjectStatusPending = "Pending"

// ActivityEntry is one line of a project's activity log. The log is
// append-only: entries are never edited or removed.
type ActivityEntry struct {
	Action    string    `json:"action"`
	By        string    `json:"by"`
	Timestamp time.Time `json:"timestamp"`
}

type Project struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `json:"category"`
	Budget      int64      `json:"budget"`
	Deadline    *time.Time `json:"deadline"`

	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	ClientID           uuid.UUID `gorm:"type:uuid;index" json:"clientId"`
	AssignedFreelancer uuid.UUID `gorm:"type:uuid;index" json:"assignedFreelancer"`

	// Team members assigned to this project, mirrored by each member's
	// assignedProjects list.
	AssignedTo datatypes.JSONSlice[uuid.UUID] `json:"assignedTo"`

	Progress int                                `gorm:"default:0" json:"progress"`
	Activity datatypes.JSONSlice[ActivityEntry] `json:"activity"`
	Status   string                             `gorm:"type:varchar(30);default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

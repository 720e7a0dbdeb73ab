package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ProposalStatusPending = "Pending"

type Proposal struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID  uuid.UUID `gorm:"type:uuid;index" json:"clientId"`
	ProjectID uuid.UUID `gorm:"type:uuid;index" json:"projectId"`

	Overview    string     `gorm:"type:text" json:"overview"`
	ScopeOfWork string     `gorm:"type:text" json:"scopeOfWork"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`

	TotalAmount        int64  `json:"totalAmount"`
	TermsAndConditions string `gorm:"type:text" json:"termsAndConditions"`
	Status             string `gorm:"type:varchar(30);default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Proposal) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Client struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string    `gorm:"not null" json:"name"`
	Email  string    `gorm:"uniqueIndex;not null" json:"email"`
	Mobile string    `gorm:"type:varchar(30)" json:"mobile"`

	Password string `gorm:"not null" json:"-"`

	CompanyName              string `json:"companyName"`
	ProfileImage             string `json:"profileImage"`
	Address                  string `gorm:"type:text" json:"address"`
	Bio                      string `gorm:"type:text" json:"bio"`
	Website                  string `json:"website"`
	TermsAndConditionsAgreed bool   `json:"termsAndConditionsAgreed"`

	// Projects owned by this client. A project enters this list when it is
	// created with clientId pointing here and is never removed afterwards.
	MyProjects datatypes.JSONSlice[uuid.UUID] `json:"myProjects"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

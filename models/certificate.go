package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Certificate struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Image       string    `gorm:"type:text;not null" json:"image"`
	Issuer      string    `gorm:"size:200;not null" json:"issuer"`
	Date        time.Time `json:"date"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Link        string    `gorm:"type:text" json:"link,omitempty"`
	Category    string    `gorm:"size:100;default:'general'" json:"category"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectCategory string

const (
	CategoryProject    ProjectCategory = "project"
	CategoryInternship ProjectCategory = "internship"
)

// ValidProjectCategory reports whether the value is one of the allowed
// category enum values.
func ValidProjectCategory(c ProjectCategory) bool {
	return c == CategoryProject || c == CategoryInternship
}

type Project struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Image       string          `gorm:"type:text" json:"image"`
	Link        string          `gorm:"type:text" json:"link,omitempty"`
	Github      string          `gorm:"type:text" json:"github,omitempty"`
	BlogLink    string          `gorm:"type:text" json:"blogLink,omitempty"`
	Company     string          `gorm:"size:150" json:"company,omitempty"`
	Category    ProjectCategory `gorm:"type:varchar(20);not null;default:'project'" json:"category"`
	TechStack   []string        `gorm:"serializer:json" json:"techStack"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

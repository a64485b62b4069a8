package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EducationMode string

const (
	ModeOnline  EducationMode = "Online"
	ModeOffline EducationMode = "Offline"
)

// Education is one structured entry of Hero.Educations. The whole list is
// replaced atomically on update, there is no per-entry patch.
type Education struct {
	Institute string        `json:"institute"`
	Logo      string        `json:"logo,omitempty"`
	URL       string        `json:"url,omitempty"`
	Mode      EducationMode `json:"mode,omitempty"`
	Degree    string        `json:"degree,omitempty"`
	Stream    string        `json:"stream,omitempty"`
	StartYear string        `json:"startYear,omitempty"`
	EndYear   string        `json:"endYear,omitempty"`
	Tags      []string      `json:"tags,omitempty"`
}

// FileRef points at an object in the blob store. Path is the provider-internal
// handle kept for later cleanup, URL is the public link.
type FileRef struct {
	URL  string `json:"url,omitempty"`
	Path string `json:"path,omitempty"`
}

type SocialLinks struct {
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Hero is the profile/bio entity. Multiple rows may exist; reads treat the
// most recently created row as the current one.
type Hero struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string    `gorm:"size:150" json:"name"`
	Titles []string  `gorm:"serializer:json" json:"titles"`
	About  string    `gorm:"type:text" json:"about"`
	// Legacy free-form education string, kept next to the structured entries.
	Education    string      `gorm:"type:text" json:"education,omitempty"`
	Educations   []Education `gorm:"serializer:json" json:"educations"`
	Resume       FileRef     `gorm:"serializer:json" json:"resume"`
	ProfileImage FileRef     `gorm:"serializer:json" json:"profileImage"`
	Location     string      `gorm:"size:150" json:"location,omitempty"`
	SocialLinks  SocialLinks `gorm:"serializer:json" json:"socialLinks"`
	MusicEnabled bool        `gorm:"default:false" json:"musicEnabled"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (h *Hero) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

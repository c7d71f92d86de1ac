package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedProgression is a stored chord progression with an optional
// preferred voicing realization.
type SavedProgression struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Tonic       string `gorm:"not null" json:"tonic"` // e.g. "Eb"
	Mode        string `gorm:"default:'major'" json:"mode"`
	Progression string `gorm:"not null" json:"progression"` // e.g. "I V6 I IV V7 I"

	// Best realization found for this progression, one voicing per
	// chord as space-separated note names ("Bb4 Eb4 G3 Eb3; ...").
	Voicings string `json:"voicings,omitempty"`
	Score    *int   `json:"score,omitempty"`

	// Owner from the gateway, empty when running without auth.
	UserID string `gorm:"index" json:"user_id,omitempty"`
}

// BeforeCreate assigns a UUID primary key
func (p *SavedProgression) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

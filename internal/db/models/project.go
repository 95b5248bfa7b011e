// Package models contains database model definitions.
package models

import (
	"time"
)

// Project represents one completed or ongoing construction project shown on
// the public site and managed from the admin console.
type Project struct {
	ID uint64 `gorm:"primaryKey"`
	// Title is the project headline.
	Title string `gorm:"size:100;not null"`
	// Client names the customer the project was delivered for.
	Client   string `gorm:"size:100"`
	Location string `gorm:"size:100"`
	// ProjectValue is a display string, e.g. "MK 45,000,000".
	ProjectValue   string `gorm:"size:50"`
	CompletionDate string `gorm:"size:50"`
	// Details is the full project description.
	Details string `gorm:"type:text;not null"`
	// ImageURL is the stored filename of the main project image.
	ImageURL string `gorm:"size:200"`
	// Category groups projects on the public portfolio page.
	Category string `gorm:"size:50;not null;default:'General Construction'"`
	// DatePosted is set once when the project is created.
	DatePosted time.Time `gorm:"not null"`
	// Images holds the additional gallery images.
	Images []ProjectImage `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// ProjectImage is one gallery image belonging to a project.
type ProjectImage struct {
	ID uint64 `gorm:"primaryKey"`
	// ImageURL is the stored filename of the gallery image.
	ImageURL  string `gorm:"size:200;not null"`
	ProjectID uint64 `gorm:"not null;index"`
}

package models

// Testimonial is a customer quote shown on the public site.
type Testimonial struct {
	ID     uint64 `gorm:"primaryKey"`
	Author string `gorm:"size:100;not null"`
	// Position is the role or company line shown under the author.
	Position string `gorm:"size:100"`
	Quote    string `gorm:"type:text;not null"`
}

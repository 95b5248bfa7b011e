package models

// ClientLogo is one customer logo shown in the client strip, ordered by
// OrderNum.
type ClientLogo struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
	// ImageURL is the stored filename of the logo image.
	ImageURL string `gorm:"size:200;not null"`
	// WebsiteURL is an optional link wrapped around the logo.
	WebsiteURL string `gorm:"size:200"`
	OrderNum   int    `gorm:"default:0"`
}

package models

// Certification is one certificate or registration shown on the about page,
// ordered by OrderNum.
type Certification struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
	// IssuingBody names the organisation that granted the certification.
	IssuingBody string `gorm:"size:100"`
	// ImageURL is the stored filename of the certificate image.
	ImageURL string `gorm:"size:200"`
	OrderNum int    `gorm:"default:0"`
}

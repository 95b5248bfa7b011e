package models

// TeamMember is one person on the about page, ordered by OrderNum.
type TeamMember struct {
	ID       uint64 `gorm:"primaryKey"`
	Name     string `gorm:"size:100;not null"`
	Position string `gorm:"size:100;not null"`
	Bio      string `gorm:"type:text"`
	// ImageURL is the stored filename of the portrait photo.
	ImageURL string `gorm:"size:200;not null"`
	OrderNum int    `gorm:"default:0"`
}

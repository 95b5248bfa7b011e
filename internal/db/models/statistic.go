package models

// Statistic is one numeric highlight ("120 projects completed") with an
// optional icon, ordered by OrderNum on the public site.
type Statistic struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:50;not null"`
	// Value is the number the public page counts up to.
	Value int `gorm:"not null"`
	// Icon is a Font Awesome class value from the fixed icon list.
	Icon     string `gorm:"size:50"`
	OrderNum int    `gorm:"default:0"`
}

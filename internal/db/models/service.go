package models

// Service represents one service offering, reachable on the public site via
// its slug.
type Service struct {
	ID    uint64 `gorm:"primaryKey"`
	Title string `gorm:"size:100;not null"`
	// Slug is derived from Title and used in public URLs.
	Slug string `gorm:"uniqueIndex;size:120;not null"`
	// Summary is the teaser shown in service listings.
	Summary string `gorm:"size:300"`
	// FullContent is the complete service description.
	FullContent string `gorm:"type:text;not null"`
	// ImageURL is the stored filename of the small listing thumbnail.
	ImageURL string `gorm:"size:200"`
	// HeaderImageURL is the stored filename of the wide detail page banner.
	HeaderImageURL string `gorm:"size:200"`
	OrderNum       int    `gorm:"default:0"`
	// ProjectCategoryLink ties this service to a project category so the
	// detail page can show related projects.
	ProjectCategoryLink string `gorm:"size:50"`
}

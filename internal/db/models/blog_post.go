package models

import (
	"time"
)

// BlogPost represents one news article.
type BlogPost struct {
	ID      uint64 `gorm:"primaryKey"`
	Title   string `gorm:"size:150;not null"`
	Content string `gorm:"type:text;not null"`
	// Author is fixed at creation time.
	Author string `gorm:"size:50;not null;default:'Admin'"`
	// DatePosted is set once when the post is created.
	DatePosted time.Time `gorm:"not null"`
}

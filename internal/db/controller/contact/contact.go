// Package contact provides persistence operations for contact form submissions.
package contact

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/db/models"
)

var (
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("contact submission not found")
	// ErrMessageEmpty is returned when attempting to store a submission without a message.
	ErrMessageEmpty = errors.New("contact submission message cannot be empty")
	// ErrNameEmpty is returned when attempting to store a submission without a sender name.
	ErrNameEmpty = errors.New("contact submission name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new submission. SubmittedAt is set here, not by the caller.
func Create(db *gorm.DB, sub *models.ContactSubmission) (*models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if sub.Name == "" {
		return nil, ErrNameEmpty
	}
	if sub.Message == "" {
		return nil, ErrMessageEmpty
	}

	sub.SubmittedAt = time.Now()

	result := db.Create(sub)
	if result.Error != nil {
		return nil, result.Error
	}

	return sub, nil
}

// GetByID retrieves a submission by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var sub models.ContactSubmission
	result := db.First(&sub, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, result.Error
	}

	return &sub, nil
}

// GetAll retrieves all submissions, newest first.
func GetAll(db *gorm.DB) ([]models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var subs []models.ContactSubmission
	result := db.Order("id DESC").Find(&subs)
	if result.Error != nil {
		return nil, result.Error
	}

	return subs, nil
}

// Latest retrieves the n newest submissions.
func Latest(db *gorm.DB, n int) ([]models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var subs []models.ContactSubmission
	result := db.Order("id DESC").Limit(n).Find(&subs)
	if result.Error != nil {
		return nil, result.Error
	}

	return subs, nil
}

// Count returns the number of stored submissions.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.ContactSubmission{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Delete deletes a submission by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.ContactSubmission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

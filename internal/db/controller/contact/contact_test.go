package contact

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(&models.ContactSubmission{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedSubmissions inserts test data into the database.
func seedSubmissions(t *testing.T, db *gorm.DB, subs []models.ContactSubmission) {
	t.Helper()
	for _, sub := range subs {
		err := db.Create(&sub).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		dbNil         bool
		submission    models.ContactSubmission
		expectedError error
	}{
		{
			name:          "nil database",
			dbNil:         true,
			submission:    models.ContactSubmission{Name: "John", Message: "Hello"},
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			submission:    models.ContactSubmission{Message: "Hello"},
			expectedError: ErrNameEmpty,
		},
		{
			name:          "empty message",
			submission:    models.ContactSubmission{Name: "John"},
			expectedError: ErrMessageEmpty,
		},
		{
			name: "successful create",
			submission: models.ContactSubmission{
				Name:    "John Banda",
				Email:   "john@example.com",
				Subject: "Quotation",
				Message: "Please send a quotation for a warehouse.",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var db *gorm.DB
			if !tc.dbNil {
				db = setupTestDB(t)
			}

			sub := tc.submission
			created, err := Create(db, &sub)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, created.ID)
			assert.False(t, created.SubmittedAt.IsZero(), "SubmittedAt should be set by Create")
		})
	}
}

func TestGetByID(t *testing.T) {
	db := setupTestDB(t)

	seedSubmissions(t, db, []models.ContactSubmission{
		{Name: "Jane", Email: "jane@example.com", Message: "First"},
	})

	t.Run("nil database", func(t *testing.T) {
		_, err := GetByID(nil, 1)
		assert.ErrorIs(t, err, ErrDBNil)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := GetByID(db, 999)
		assert.ErrorIs(t, err, ErrSubmissionNotFound)
	})

	t.Run("successful get", func(t *testing.T) {
		sub, err := GetByID(db, 1)
		require.NoError(t, err)
		assert.Equal(t, "Jane", sub.Name)
		assert.Equal(t, "First", sub.Message)
	})
}

func TestGetAllAndLatest(t *testing.T) {
	db := setupTestDB(t)

	seedSubmissions(t, db, []models.ContactSubmission{
		{Name: "A", Email: "a@example.com", Message: "first message"},
		{Name: "B", Email: "b@example.com", Message: "second message"},
		{Name: "C", Email: "c@example.com", Message: "third message"},
	})

	all, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// newest first
	assert.Equal(t, "C", all[0].Name)
	assert.Equal(t, "A", all[2].Name)

	latest, err := Latest(db, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "C", latest[0].Name)
	assert.Equal(t, "B", latest[1].Name)
}

func TestCount(t *testing.T) {
	db := setupTestDB(t)

	count, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	seedSubmissions(t, db, []models.ContactSubmission{
		{Name: "A", Email: "a@example.com", Message: "msg"},
		{Name: "B", Email: "b@example.com", Message: "msg"},
	})

	count, err = Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	seedSubmissions(t, db, []models.ContactSubmission{
		{Name: "A", Email: "a@example.com", Message: "msg"},
	})

	t.Run("nil database", func(t *testing.T) {
		err := Delete(nil, 1)
		assert.ErrorIs(t, err, ErrDBNil)
	})

	t.Run("not found", func(t *testing.T) {
		err := Delete(db, 999)
		assert.ErrorIs(t, err, ErrSubmissionNotFound)
	})

	t.Run("successful delete", func(t *testing.T) {
		err := Delete(db, 1)
		require.NoError(t, err)

		_, err = GetByID(db, 1)
		assert.ErrorIs(t, err, ErrSubmissionNotFound)
	})
}

// Package content implements the admin content registry. Every manageable
// content category implements Type and is dispatched to by identifier, the
// admin pages never switch on concrete categories themselves.
package content

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/media"
)

// Form is the submitted field and file data of a create or update request.
type Form interface {
	// Value returns the first submitted value of a text field.
	Value(name string) string
	// Values returns all submitted values of a text field.
	Values(name string) []string
	// File returns the upload of a single file field, nil when absent.
	File(name string) *media.Upload
	// Files returns all uploads of a multi file field.
	Files(name string) []*media.Upload
}

// Outcome is the non-fatal result of a create or update.
type Outcome struct {
	// Warnings are user visible notes, e.g. an image stored unoptimized.
	Warnings []string
}

func (o *Outcome) warn(msg string) {
	o.Warnings = append(o.Warnings, msg)
}

// warnFallback records a stored-unoptimized note for one image field.
func (o *Outcome) warnFallback(res *media.Result) {
	if res != nil && res.Fallback {
		o.warn("Image optimization unavailable, stored " + res.Filename + " unmodified.")
	}
}

// Type is implemented once per manageable content category.
type Type interface {
	// Name is the identifier used in admin URLs, e.g. "projects".
	Name() string
	// Label is the singular display name, e.g. "Project".
	Label() string
	// List returns all items in display order.
	List(db *gorm.DB) (any, error)
	// Count returns the number of stored items.
	Count(db *gorm.DB) (int64, error)
	// Get loads one item by id.
	Get(db *gorm.DB, id uint64) (any, error)
	// Create validates the form, stores uploads and inserts a new item.
	Create(ctx context.Context, db *gorm.DB, form Form, opt *media.Optimizer) (*Outcome, error)
	// Update applies the form to one stored item.
	Update(ctx context.Context, db *gorm.DB, id uint64, form Form, opt *media.Optimizer) (*Outcome, error)
	// OwnedFiles lists the stored file names owned by an item.
	OwnedFiles(item any) []string
	// DeleteRecord removes the item and its dependent rows.
	DeleteRecord(db *gorm.DB, item any) error
}

// Delete removes one item: owned files first (missing ones are tolerated),
// then the record itself.
func Delete(db *gorm.DB, t Type, id uint64, store *media.Store) error {
	item, err := t.Get(db, id)
	if err != nil {
		return err
	}

	for _, name := range t.OwnedFiles(item) {
		store.Remove(name)
	}

	return t.DeleteRecord(db, item)
}

// validate carries the custom enum checks for icon and category fields.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("faicon", func(fl validator.FieldLevel) bool {
		return ValidIcon(fl.Field().String())
	})

	_ = v.RegisterValidation("projectcategory", func(fl validator.FieldLevel) bool {
		return ValidCategory(fl.Field().String())
	})

	return v
}

// first loads one record by id, mapping gorm's not-found onto ErrNotFound.
func first(db *gorm.DB, dest any, id uint64, label string) error {
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(ErrNotFound, "%s %d", label, id)
	}

	return errors.Wrapf(err, "failed to load %s %d", label, id)
}

func count(db *gorm.DB, model any) (int64, error) {
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count records")
	}

	return n, nil
}

// formInt reads an optional numeric field. An empty value yields def, a
// malformed one ErrInvalidNumericField.
func formInt(form Form, field string, def int) (int, error) {
	raw := strings.TrimSpace(form.Value(field))
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidNumericField, field)
	}

	return n, nil
}

// requiredImage reads a required single file field.
func requiredImage(form Form, field string) (*media.Upload, error) {
	up := form.File(field)
	if up == nil || up.Filename == "" || len(up.Data) == 0 {
		return nil, errors.Wrap(ErrMissingRequiredImage, field)
	}

	return up, nil
}

// optionalImage reads an optional single file field, nil when absent.
func optionalImage(form Form, field string) *media.Upload {
	up := form.File(field)
	if up == nil || up.Filename == "" || len(up.Data) == 0 {
		return nil
	}

	return up
}

package content

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/media"
)

// Testimonials manages the customer quotes shown on the home page.
type Testimonials struct{}

func (Testimonials) Name() string  { return "testimonials" }
func (Testimonials) Label() string { return "Testimonial" }

func (Testimonials) List(db *gorm.DB) (any, error) {
	var items []models.Testimonial
	if err := db.Order("id desc").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list testimonials")
	}

	return items, nil
}

func (Testimonials) Count(db *gorm.DB) (int64, error) {
	return count(db, &models.Testimonial{})
}

func (Testimonials) Get(db *gorm.DB, id uint64) (any, error) {
	var item models.Testimonial
	if err := first(db, &item, id, "testimonial"); err != nil {
		return nil, err
	}

	return &item, nil
}

type testimonialInput struct {
	Author   string `validate:"required"`
	Position string
	Quote    string `validate:"required"`
}

func testimonialForm(form Form) testimonialInput {
	return testimonialInput{
		Author:   form.Value("author"),
		Position: form.Value("position"),
		Quote:    form.Value("quote"),
	}
}

func (Testimonials) Create(_ context.Context, db *gorm.DB, form Form, _ *media.Optimizer) (*Outcome, error) {
	in := testimonialForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "testimonial form validation failed")
	}

	item := models.Testimonial{
		Author:   in.Author,
		Position: in.Position,
		Quote:    in.Quote,
	}

	if err := db.Create(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create testimonial")
	}

	return &Outcome{}, nil
}

func (Testimonials) Update(_ context.Context, db *gorm.DB, id uint64, form Form, _ *media.Optimizer) (*Outcome, error) {
	var item models.Testimonial
	if err := first(db, &item, id, "testimonial"); err != nil {
		return nil, err
	}

	in := testimonialForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "testimonial form validation failed")
	}

	item.Author = in.Author
	item.Position = in.Position
	item.Quote = in.Quote

	if err := db.Save(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update testimonial")
	}

	return &Outcome{}, nil
}

func (Testimonials) OwnedFiles(any) []string {
	return nil
}

func (Testimonials) DeleteRecord(db *gorm.DB, item any) error {
	testimonial, ok := item.(*models.Testimonial)
	if !ok {
		return errors.Wrap(ErrNotFound, "testimonial")
	}

	if err := db.Delete(&models.Testimonial{}, testimonial.ID).Error; err != nil {
		return errors.Wrap(err, "failed to delete testimonial")
	}

	return nil
}

package content

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/media"
)

var certificationBounds = media.Bounds{Width: 200, Height: 200}

// Certifications manages the certificates shown on the about page.
type Certifications struct{}

func (Certifications) Name() string  { return "certifications" }
func (Certifications) Label() string { return "Certification" }

func (Certifications) List(db *gorm.DB) (any, error) {
	var items []models.Certification
	if err := db.Order("order_num asc, id asc").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list certifications")
	}

	return items, nil
}

func (Certifications) Count(db *gorm.DB) (int64, error) {
	return count(db, &models.Certification{})
}

func (Certifications) Get(db *gorm.DB, id uint64) (any, error) {
	var item models.Certification
	if err := first(db, &item, id, "certification"); err != nil {
		return nil, err
	}

	return &item, nil
}

type certificationInput struct {
	Name        string `validate:"required"`
	IssuingBody string
}

func certificationForm(form Form) certificationInput {
	return certificationInput{
		Name:        form.Value("name"),
		IssuingBody: form.Value("issuing_body"),
	}
}

func (Certifications) Create(ctx context.Context, db *gorm.DB, form Form, opt *media.Optimizer) (*Outcome, error) {
	in := certificationForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "certification form validation failed")
	}

	orderNum, err := formInt(form, "order_num", 0)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}

	image, err := storeRequiredImage(ctx, opt, out, form, "certification_image", certificationBounds)
	if err != nil {
		return nil, err
	}

	item := models.Certification{
		Name:        in.Name,
		IssuingBody: in.IssuingBody,
		ImageURL:    image,
		OrderNum:    orderNum,
	}

	if err := db.Create(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create certification")
	}

	return out, nil
}

func (Certifications) Update(ctx context.Context, db *gorm.DB, id uint64, form Form, opt *media.Optimizer) (*Outcome, error) {
	var item models.Certification
	if err := first(db, &item, id, "certification"); err != nil {
		return nil, err
	}

	in := certificationForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "certification form validation failed")
	}

	orderNum, err := formInt(form, "order_num", item.OrderNum)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}

	item.Name = in.Name
	item.IssuingBody = in.IssuingBody
	item.OrderNum = orderNum

	if up := optionalImage(form, "certification_image"); up != nil {
		replaceImage(ctx, opt, out, up, certificationBounds, &item.ImageURL)
	}

	if err := db.Save(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update certification")
	}

	return out, nil
}

func (Certifications) OwnedFiles(item any) []string {
	cert, ok := item.(*models.Certification)
	if !ok || cert.ImageURL == "" {
		return nil
	}

	return []string{cert.ImageURL}
}

func (Certifications) DeleteRecord(db *gorm.DB, item any) error {
	cert, ok := item.(*models.Certification)
	if !ok {
		return errors.Wrap(ErrNotFound, "certification")
	}

	if err := db.Delete(&models.Certification{}, cert.ID).Error; err != nil {
		return errors.Wrap(err, "failed to delete certification")
	}

	return nil
}

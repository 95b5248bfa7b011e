package content

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/media"
)

var clientLogoBounds = media.Bounds{Width: 400}

// ClientLogos manages the customer logo strip on the home page.
type ClientLogos struct{}

func (ClientLogos) Name() string  { return "client_logos" }
func (ClientLogos) Label() string { return "Client Logo" }

func (ClientLogos) List(db *gorm.DB) (any, error) {
	var items []models.ClientLogo
	if err := db.Order("order_num asc, id asc").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list client logos")
	}

	return items, nil
}

func (ClientLogos) Count(db *gorm.DB) (int64, error) {
	return count(db, &models.ClientLogo{})
}

func (ClientLogos) Get(db *gorm.DB, id uint64) (any, error) {
	var item models.ClientLogo
	if err := first(db, &item, id, "client logo"); err != nil {
		return nil, err
	}

	return &item, nil
}

type clientLogoInput struct {
	Name       string `validate:"required"`
	WebsiteURL string `validate:"omitempty,url"`
}

func clientLogoForm(form Form) clientLogoInput {
	return clientLogoInput{
		Name:       form.Value("name"),
		WebsiteURL: form.Value("website_url"),
	}
}

func (ClientLogos) Create(ctx context.Context, db *gorm.DB, form Form, opt *media.Optimizer) (*Outcome, error) {
	in := clientLogoForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "client logo form validation failed")
	}

	orderNum, err := formInt(form, "order_num", 0)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}

	logo, err := storeRequiredImage(ctx, opt, out, form, "logo_image", clientLogoBounds)
	if err != nil {
		return nil, err
	}

	item := models.ClientLogo{
		Name:       in.Name,
		ImageURL:   logo,
		WebsiteURL: in.WebsiteURL,
		OrderNum:   orderNum,
	}

	if err := db.Create(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create client logo")
	}

	return out, nil
}

func (ClientLogos) Update(ctx context.Context, db *gorm.DB, id uint64, form Form, opt *media.Optimizer) (*Outcome, error) {
	var item models.ClientLogo
	if err := first(db, &item, id, "client logo"); err != nil {
		return nil, err
	}

	in := clientLogoForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "client logo form validation failed")
	}

	orderNum, err := formInt(form, "order_num", item.OrderNum)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}

	item.Name = in.Name
	item.WebsiteURL = in.WebsiteURL
	item.OrderNum = orderNum

	if up := optionalImage(form, "logo_image"); up != nil {
		replaceImage(ctx, opt, out, up, clientLogoBounds, &item.ImageURL)
	}

	if err := db.Save(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update client logo")
	}

	return out, nil
}

func (ClientLogos) OwnedFiles(item any) []string {
	logo, ok := item.(*models.ClientLogo)
	if !ok || logo.ImageURL == "" {
		return nil
	}

	return []string{logo.ImageURL}
}

func (ClientLogos) DeleteRecord(db *gorm.DB, item any) error {
	logo, ok := item.(*models.ClientLogo)
	if !ok {
		return errors.Wrap(ErrNotFound, "client logo")
	}

	if err := db.Delete(&models.ClientLogo{}, logo.ID).Error; err != nil {
		return errors.Wrap(err, "failed to delete client logo")
	}

	return nil
}

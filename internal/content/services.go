package content

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/media"
)

var (
	serviceThumbnailBounds = media.Bounds{Width: 150, Height: 150}
	serviceHeaderBounds    = media.Bounds{Width: 1920}
)

// Services manages the service offerings published under /services/<slug>.
type Services struct{}

func (Services) Name() string  { return "services" }
func (Services) Label() string { return "Service" }

func (Services) List(db *gorm.DB) (any, error) {
	var items []models.Service
	if err := db.Order("order_num asc, id asc").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return items, nil
}

func (Services) Count(db *gorm.DB) (int64, error) {
	return count(db, &models.Service{})
}

func (Services) Get(db *gorm.DB, id uint64) (any, error) {
	var item models.Service
	if err := first(db, &item, id, "service"); err != nil {
		return nil, err
	}

	return &item, nil
}

type serviceInput struct {
	Title               string `validate:"required"`
	Summary             string
	FullContent         string `validate:"required"`
	ProjectCategoryLink string `validate:"omitempty,projectcategory"`
}

func serviceForm(form Form) serviceInput {
	return serviceInput{
		Title:               form.Value("title"),
		Summary:             form.Value("summary"),
		FullContent:         form.Value("full_content"),
		ProjectCategoryLink: form.Value("project_category_link"),
	}
}

// ensureSlugFree guards the unique slug constraint before writing. The
// record with excludeID is ignored so an unchanged title stays valid.
func ensureSlugFree(db *gorm.DB, slug string, excludeID uint64) error {
	var existing models.Service
	err := db.Where("slug = ? AND id <> ?", slug, excludeID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check slug uniqueness")
	}

	return errors.Wrap(ErrDuplicateSlug, slug)
}

func (Services) Create(ctx context.Context, db *gorm.DB, form Form, opt *media.Optimizer) (*Outcome, error) {
	in := serviceForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "service form validation failed")
	}

	slug := Slugify(in.Title)
	if err := ensureSlugFree(db, slug, 0); err != nil {
		return nil, err
	}

	orderNum, err := formInt(form, "order_num", 0)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}

	thumbnail, err := storeRequiredImage(ctx, opt, out, form, "service_thumbnail_image", serviceThumbnailBounds)
	if err != nil {
		return nil, err
	}

	item := models.Service{
		Title:               in.Title,
		Slug:                slug,
		Summary:             in.Summary,
		FullContent:         in.FullContent,
		ImageURL:            thumbnail,
		HeaderImageURL:      storeOptionalImage(ctx, opt, out, form, "service_header_image", serviceHeaderBounds),
		OrderNum:            orderNum,
		ProjectCategoryLink: in.ProjectCategoryLink,
	}

	if err := db.Create(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	return out, nil
}

func (Services) Update(ctx context.Context, db *gorm.DB, id uint64, form Form, opt *media.Optimizer) (*Outcome, error) {
	var item models.Service
	if err := first(db, &item, id, "service"); err != nil {
		return nil, err
	}

	in := serviceForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "service form validation failed")
	}

	slug := Slugify(in.Title)
	if err := ensureSlugFree(db, slug, item.ID); err != nil {
		return nil, err
	}

	orderNum, err := formInt(form, "order_num", item.OrderNum)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}

	item.Title = in.Title
	item.Slug = slug
	item.Summary = in.Summary
	item.FullContent = in.FullContent
	item.OrderNum = orderNum
	item.ProjectCategoryLink = in.ProjectCategoryLink

	if up := optionalImage(form, "service_thumbnail_image"); up != nil {
		replaceImage(ctx, opt, out, up, serviceThumbnailBounds, &item.ImageURL)
	}

	if up := optionalImage(form, "service_header_image"); up != nil {
		replaceImage(ctx, opt, out, up, serviceHeaderBounds, &item.HeaderImageURL)
	}

	if err := db.Save(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update service")
	}

	return out, nil
}

func (Services) OwnedFiles(item any) []string {
	service, ok := item.(*models.Service)
	if !ok {
		return nil
	}

	var files []string
	if service.ImageURL != "" {
		files = append(files, service.ImageURL)
	}
	if service.HeaderImageURL != "" {
		files = append(files, service.HeaderImageURL)
	}

	return files
}

func (Services) DeleteRecord(db *gorm.DB, item any) error {
	service, ok := item.(*models.Service)
	if !ok {
		return errors.Wrap(ErrNotFound, "service")
	}

	if err := db.Delete(&models.Service{}, service.ID).Error; err != nil {
		return errors.Wrap(err, "failed to delete service")
	}

	return nil
}

package content

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/media"
)

var (
	projectImageBounds = media.Bounds{Width: 1920}
	galleryImageBounds = media.Bounds{Width: 1200}
)

// Projects manages the portfolio entries and their gallery images.
type Projects struct{}

func (Projects) Name() string  { return "projects" }
func (Projects) Label() string { return "Project" }

func (Projects) List(db *gorm.DB) (any, error) {
	var items []models.Project
	if err := db.Order("id desc").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return items, nil
}

func (Projects) Count(db *gorm.DB) (int64, error) {
	return count(db, &models.Project{})
}

func (Projects) Get(db *gorm.DB, id uint64) (any, error) {
	var item models.Project
	err := db.Preload("Images").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "project %d", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load project %d", id)
	}

	return &item, nil
}

type projectInput struct {
	Title          string `validate:"required"`
	Client         string
	Location       string
	ProjectValue   string
	CompletionDate string
	Details        string `validate:"required"`
	Category       string `validate:"required,projectcategory"`
}

func projectForm(form Form) projectInput {
	return projectInput{
		Title:          form.Value("title"),
		Client:         form.Value("client"),
		Location:       form.Value("location"),
		ProjectValue:   form.Value("project_value"),
		CompletionDate: form.Value("completion_date"),
		Details:        form.Value("details"),
		Category:       form.Value("category"),
	}
}

func (Projects) Create(ctx context.Context, db *gorm.DB, form Form, opt *media.Optimizer) (*Outcome, error) {
	in := projectForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "project form validation failed")
	}

	out := &Outcome{}

	mainImage, err := storeRequiredImage(ctx, opt, out, form, "project_image", projectImageBounds)
	if err != nil {
		return nil, err
	}

	item := models.Project{
		Title:          in.Title,
		Client:         in.Client,
		Location:       in.Location,
		ProjectValue:   in.ProjectValue,
		CompletionDate: in.CompletionDate,
		Details:        in.Details,
		Category:       in.Category,
		ImageURL:       mainImage,
		DatePosted:     time.Now(),
		Images:         storeGalleryImages(ctx, opt, out, form),
	}

	if err := db.Create(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	return out, nil
}

func (Projects) Update(ctx context.Context, db *gorm.DB, id uint64, form Form, opt *media.Optimizer) (*Outcome, error) {
	var item models.Project
	if err := first(db, &item, id, "project"); err != nil {
		return nil, err
	}

	in := projectForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "project form validation failed")
	}

	out := &Outcome{}

	item.Title = in.Title
	item.Client = in.Client
	item.Location = in.Location
	item.ProjectValue = in.ProjectValue
	item.CompletionDate = in.CompletionDate
	item.Details = in.Details
	item.Category = in.Category

	if up := optionalImage(form, "project_image"); up != nil {
		replaceImage(ctx, opt, out, up, projectImageBounds, &item.ImageURL)
	}

	if err := db.Save(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update project")
	}

	for _, img := range storeGalleryImages(ctx, opt, out, form) {
		img.ProjectID = item.ID
		if err := db.Create(&img).Error; err != nil {
			return nil, errors.Wrap(err, "failed to add gallery image")
		}
	}

	if err := removeGalleryImages(db, &item, form.Values("delete_images"), opt.Store()); err != nil {
		return nil, err
	}

	return out, nil
}

// storeGalleryImages stores every submitted gallery upload. Failed ones are
// skipped with a warning so the remaining images still make it in.
func storeGalleryImages(ctx context.Context, opt *media.Optimizer, out *Outcome, form Form) []models.ProjectImage {
	var images []models.ProjectImage

	for _, up := range form.Files("gallery_images") {
		if up == nil || up.Filename == "" || len(up.Data) == 0 {
			continue
		}

		res, err := opt.Optimize(ctx, up, galleryImageBounds)
		if err != nil {
			out.warn("Gallery image " + up.Filename + " could not be stored and was skipped.")

			continue
		}

		out.warnFallback(res)
		images = append(images, models.ProjectImage{ImageURL: res.Filename})
	}

	return images
}

// removeGalleryImages deletes the selected gallery rows and their files.
// Ids that do not belong to the project are ignored.
func removeGalleryImages(db *gorm.DB, item *models.Project, ids []string, store *media.Store) error {
	for _, raw := range ids {
		imageID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}

		var img models.ProjectImage
		err = db.First(&img, imageID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && img.ProjectID != item.ID) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to load gallery image %d", imageID)
		}

		store.Remove(img.ImageURL)

		if err := db.Delete(&models.ProjectImage{}, img.ID).Error; err != nil {
			return errors.Wrapf(err, "failed to delete gallery image %d", imageID)
		}
	}

	return nil
}

func (Projects) OwnedFiles(item any) []string {
	project, ok := item.(*models.Project)
	if !ok {
		return nil
	}

	var files []string
	if project.ImageURL != "" {
		files = append(files, project.ImageURL)
	}

	for _, img := range project.Images {
		if img.ImageURL != "" {
			files = append(files, img.ImageURL)
		}
	}

	return files
}

func (Projects) DeleteRecord(db *gorm.DB, item any) error {
	project, ok := item.(*models.Project)
	if !ok {
		return errors.Wrap(ErrNotFound, "project")
	}

	if err := db.Where("project_id = ?", project.ID).Delete(&models.ProjectImage{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete gallery images")
	}

	if err := db.Delete(&models.Project{}, project.ID).Error; err != nil {
		return errors.Wrap(err, "failed to delete project")
	}

	return nil
}

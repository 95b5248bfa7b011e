package content

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/media"
)

// BlogPosts manages the news articles.
type BlogPosts struct{}

func (BlogPosts) Name() string  { return "blog" }
func (BlogPosts) Label() string { return "Blog Post" }

func (BlogPosts) List(db *gorm.DB) (any, error) {
	var items []models.BlogPost
	if err := db.Order("id desc").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	return items, nil
}

func (BlogPosts) Count(db *gorm.DB) (int64, error) {
	return count(db, &models.BlogPost{})
}

func (BlogPosts) Get(db *gorm.DB, id uint64) (any, error) {
	var item models.BlogPost
	if err := first(db, &item, id, "blog post"); err != nil {
		return nil, err
	}

	return &item, nil
}

type blogPostInput struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

func blogPostForm(form Form) blogPostInput {
	return blogPostInput{
		Title:   form.Value("title"),
		Content: form.Value("content"),
	}
}

func (BlogPosts) Create(_ context.Context, db *gorm.DB, form Form, _ *media.Optimizer) (*Outcome, error) {
	in := blogPostForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "blog post form validation failed")
	}

	item := models.BlogPost{
		Title:      in.Title,
		Content:    in.Content,
		Author:     "Admin",
		DatePosted: time.Now(),
	}

	if err := db.Create(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create blog post")
	}

	return &Outcome{}, nil
}

func (BlogPosts) Update(_ context.Context, db *gorm.DB, id uint64, form Form, _ *media.Optimizer) (*Outcome, error) {
	var item models.BlogPost
	if err := first(db, &item, id, "blog post"); err != nil {
		return nil, err
	}

	in := blogPostForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "blog post form validation failed")
	}

	item.Title = in.Title
	item.Content = in.Content

	if err := db.Save(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update blog post")
	}

	return &Outcome{}, nil
}

func (BlogPosts) OwnedFiles(any) []string {
	return nil
}

func (BlogPosts) DeleteRecord(db *gorm.DB, item any) error {
	post, ok := item.(*models.BlogPost)
	if !ok {
		return errors.Wrap(ErrNotFound, "blog post")
	}

	if err := db.Delete(&models.BlogPost{}, post.ID).Error; err != nil {
		return errors.Wrap(err, "failed to delete blog post")
	}

	return nil
}

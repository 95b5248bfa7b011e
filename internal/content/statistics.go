package content

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/media"
)

// Statistics manages the numeric counters on the home page.
type Statistics struct{}

func (Statistics) Name() string  { return "statistics" }
func (Statistics) Label() string { return "Statistic" }

func (Statistics) List(db *gorm.DB) (any, error) {
	var items []models.Statistic
	if err := db.Order("order_num asc, id asc").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list statistics")
	}

	return items, nil
}

func (Statistics) Count(db *gorm.DB) (int64, error) {
	return count(db, &models.Statistic{})
}

func (Statistics) Get(db *gorm.DB, id uint64) (any, error) {
	var item models.Statistic
	if err := first(db, &item, id, "statistic"); err != nil {
		return nil, err
	}

	return &item, nil
}

type statisticInput struct {
	Name string `validate:"required"`
	Icon string `validate:"omitempty,faicon"`
}

func statisticForm(form Form) statisticInput {
	return statisticInput{
		Name: form.Value("name"),
		Icon: form.Value("icon"),
	}
}

func (Statistics) Create(_ context.Context, db *gorm.DB, form Form, _ *media.Optimizer) (*Outcome, error) {
	in := statisticForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "statistic form validation failed")
	}

	value, err := formInt(form, "value", 0)
	if err != nil {
		return nil, err
	}

	orderNum, err := formInt(form, "order_num", 0)
	if err != nil {
		return nil, err
	}

	item := models.Statistic{
		Name:     in.Name,
		Value:    value,
		Icon:     in.Icon,
		OrderNum: orderNum,
	}

	if err := db.Create(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create statistic")
	}

	return &Outcome{}, nil
}

func (Statistics) Update(_ context.Context, db *gorm.DB, id uint64, form Form, _ *media.Optimizer) (*Outcome, error) {
	var item models.Statistic
	if err := first(db, &item, id, "statistic"); err != nil {
		return nil, err
	}

	in := statisticForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "statistic form validation failed")
	}

	value, err := formInt(form, "value", item.Value)
	if err != nil {
		return nil, err
	}

	orderNum, err := formInt(form, "order_num", item.OrderNum)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Value = value
	item.Icon = in.Icon
	item.OrderNum = orderNum

	if err := db.Save(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update statistic")
	}

	return &Outcome{}, nil
}

func (Statistics) OwnedFiles(any) []string {
	return nil
}

func (Statistics) DeleteRecord(db *gorm.DB, item any) error {
	statistic, ok := item.(*models.Statistic)
	if !ok {
		return errors.Wrap(ErrNotFound, "statistic")
	}

	if err := db.Delete(&models.Statistic{}, statistic.ID).Error; err != nil {
		return errors.Wrap(err, "failed to delete statistic")
	}

	return nil
}

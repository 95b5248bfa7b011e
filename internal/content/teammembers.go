package content

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/media"
)

var memberImageBounds = media.Bounds{Width: 800}

// TeamMembers manages the people shown on the about page.
type TeamMembers struct{}

func (TeamMembers) Name() string  { return "team_members" }
func (TeamMembers) Label() string { return "Team Member" }

func (TeamMembers) List(db *gorm.DB) (any, error) {
	var items []models.TeamMember
	if err := db.Order("order_num asc, id asc").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list team members")
	}

	return items, nil
}

func (TeamMembers) Count(db *gorm.DB) (int64, error) {
	return count(db, &models.TeamMember{})
}

func (TeamMembers) Get(db *gorm.DB, id uint64) (any, error) {
	var item models.TeamMember
	if err := first(db, &item, id, "team member"); err != nil {
		return nil, err
	}

	return &item, nil
}

type teamMemberInput struct {
	Name     string `validate:"required"`
	Position string `validate:"required"`
	Bio      string
}

func teamMemberForm(form Form) teamMemberInput {
	return teamMemberInput{
		Name:     form.Value("name"),
		Position: form.Value("position"),
		Bio:      form.Value("bio"),
	}
}

func (TeamMembers) Create(ctx context.Context, db *gorm.DB, form Form, opt *media.Optimizer) (*Outcome, error) {
	in := teamMemberForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "team member form validation failed")
	}

	orderNum, err := formInt(form, "order_num", 0)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}

	photo, err := storeRequiredImage(ctx, opt, out, form, "member_image", memberImageBounds)
	if err != nil {
		return nil, err
	}

	item := models.TeamMember{
		Name:     in.Name,
		Position: in.Position,
		Bio:      in.Bio,
		ImageURL: photo,
		OrderNum: orderNum,
	}

	if err := db.Create(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create team member")
	}

	return out, nil
}

func (TeamMembers) Update(ctx context.Context, db *gorm.DB, id uint64, form Form, opt *media.Optimizer) (*Outcome, error) {
	var item models.TeamMember
	if err := first(db, &item, id, "team member"); err != nil {
		return nil, err
	}

	in := teamMemberForm(form)
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrap(err, "team member form validation failed")
	}

	orderNum, err := formInt(form, "order_num", item.OrderNum)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}

	item.Name = in.Name
	item.Position = in.Position
	item.Bio = in.Bio
	item.OrderNum = orderNum

	if up := optionalImage(form, "member_image"); up != nil {
		replaceImage(ctx, opt, out, up, memberImageBounds, &item.ImageURL)
	}

	if err := db.Save(&item).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update team member")
	}

	return out, nil
}

func (TeamMembers) OwnedFiles(item any) []string {
	member, ok := item.(*models.TeamMember)
	if !ok || member.ImageURL == "" {
		return nil
	}

	return []string{member.ImageURL}
}

func (TeamMembers) DeleteRecord(db *gorm.DB, item any) error {
	member, ok := item.(*models.TeamMember)
	if !ok {
		return errors.Wrap(ErrNotFound, "team member")
	}

	if err := db.Delete(&models.TeamMember{}, member.ID).Error; err != nil {
		return errors.Wrap(err, "failed to delete team member")
	}

	return nil
}

package dao

import (
	"context"
	"strings"

	"maxops/maxops/sources/psql/models"

	"gorm.io/gorm"
)

type PlaybookDAO struct {
	DB *gorm.DB
}

func NewPlaybookDAO(db *gorm.DB) *PlaybookDAO {
	return &PlaybookDAO{DB: db}
}

// UpsertByTitle creates the playbook, or updates the existing row that shares
// its title. Title is the natural key the seed tool converges on.
func (dao *PlaybookDAO) UpsertByTitle(ctx context.Context, pb *models.Playbook) (created bool, err error) {
	var existing models.Playbook
	err = dao.DB.WithContext(ctx).Where("title = ?", pb.Title).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		if err := dao.DB.WithContext(ctx).Create(pb).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}
	existing.Description = pb.Description
	existing.Category = pb.Category
	existing.Tags = pb.Tags
	existing.Content = pb.Content
	if err := dao.DB.WithContext(ctx).Save(&existing).Error; err != nil {
		return false, err
	}
	*pb = existing
	return false, nil
}

func (dao *PlaybookDAO) GetAll(ctx context.Context) ([]models.Playbook, error) {
	var pbs []models.Playbook
	err := dao.DB.WithContext(ctx).Order("title ASC").Find(&pbs).Error
	if err != nil {
		return nil, err
	}
	return pbs, nil
}

// Search returns playbooks whose title, tags or content match any of the
// query terms. Plain ILIKE matching; good enough for prompt grounding.
func (dao *PlaybookDAO) Search(ctx context.Context, query string, limit int) ([]models.Playbook, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil, nil
	}
	q := dao.DB.WithContext(ctx)
	cond := dao.DB.Session(&gorm.Session{NewDB: true})
	kept := 0
	for _, term := range terms {
		if len(term) < 4 {
			continue
		}
		kept++
		pattern := "%" + term + "%"
		cond = cond.Or("lower(title) LIKE ? OR lower(tags) LIKE ? OR lower(content) LIKE ?",
			pattern, pattern, pattern)
	}
	// an empty Or-group would match every row
	if kept == 0 {
		return nil, nil
	}
	var pbs []models.Playbook
	err := q.Where(cond).Limit(limit).Find(&pbs).Error
	if err != nil {
		return nil, err
	}
	return pbs, nil
}

// maxops/controllers/playbooks.go
package controllers

import (
	"context"

	"maxops/maxops/sources/psql/dao"
	"maxops/maxops/sources/psql/models"
)

type PlaybooksController struct {
	dao *dao.PlaybookDAO
}

func NewPlaybooksController(playbookDAO *dao.PlaybookDAO) *PlaybooksController {
	return &PlaybooksController{dao: playbookDAO}
}

func (c *PlaybooksController) List(ctx context.Context) ([]models.Playbook, error) {
	return c.dao.GetAll(ctx)
}

func (c *PlaybooksController) Search(ctx context.Context, query string, limit int) ([]models.Playbook, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return c.dao.Search(ctx, query, limit)
}

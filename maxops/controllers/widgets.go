// maxops/controllers/widgets.go
package controllers

import (
	"context"
	"fmt"

	"maxops/maxops/sources/psql/dao"
	"maxops/maxops/sources/psql/models"
	"maxops/maxops/types"

	"github.com/google/uuid"
)

type WidgetsController struct {
	dao *dao.WidgetDAO
}

func NewWidgetsController(widgetDAO *dao.WidgetDAO) *WidgetsController {
	return &WidgetsController{dao: widgetDAO}
}

func (c *WidgetsController) Create(ctx context.Context, userID int, req types.WidgetRequest) (*models.Widget, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("widget title required")
	}
	if req.WidgetType != "chart" && req.WidgetType != "table" {
		return nil, fmt.Errorf("unsupported widget type: %s", req.WidgetType)
	}
	w := &models.Widget{
		UserID:     userID,
		Title:      req.Title,
		WidgetType: req.WidgetType,
		ChartType:  req.ChartType,
		DataSource: req.DataSource,
		Config:     req.Config,
	}
	if err := c.dao.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (c *WidgetsController) List(ctx context.Context, userID int) ([]models.Widget, error) {
	return c.dao.GetByUser(ctx, userID)
}

func (c *WidgetsController) Delete(ctx context.Context, userID int, id uuid.UUID) error {
	return c.dao.Delete(ctx, userID, id)
}

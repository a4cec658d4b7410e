package dao

import (
	"context"

	"maxops/maxops/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WidgetDAO struct {
	DB *gorm.DB
}

func NewWidgetDAO(db *gorm.DB) *WidgetDAO {
	return &WidgetDAO{DB: db}
}

func (dao *WidgetDAO) Create(ctx context.Context, w *models.Widget) error {
	return dao.DB.WithContext(ctx).Create(w).Error
}

func (dao *WidgetDAO) GetByUser(ctx context.Context, userID int) ([]models.Widget, error) {
	var ws []models.Widget
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ws).Error
	if err != nil {
		return nil, err
	}
	return ws, nil
}

func (dao *WidgetDAO) Delete(ctx context.Context, userID int, id uuid.UUID) error {
	res := dao.DB.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Widget{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

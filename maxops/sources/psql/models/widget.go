// maxops/sources/psql/models/widget.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Widget is a canvas chart or table created from an assistant directive.
type Widget struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     int       `json:"user_id" gorm:"not null;index"`
	User       User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Title      string    `json:"title" gorm:"type:varchar(255);not null"`
	WidgetType string    `json:"widget_type" gorm:"type:varchar(50);not null"`
	ChartType  string    `json:"chart_type" gorm:"type:varchar(50);default:''"`
	DataSource string    `json:"data_source" gorm:"type:varchar(255);default:''"`
	Config     string    `json:"config" gorm:"type:text;default:''"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Widget) TableName() string {
	return "widgets"
}

func (w *Widget) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

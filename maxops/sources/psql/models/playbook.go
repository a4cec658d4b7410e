// maxops/sources/psql/models/playbook.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Playbook is a long-form operational document the assistant grounds its
// answers on. Title is the natural key the seed tool upserts by.
type Playbook struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text;default:''"`
	Category    string    `json:"category" gorm:"type:varchar(100);default:''"`
	Tags        string    `json:"tags" gorm:"type:text;default:''"` // comma-separated
	Content     string    `json:"content" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Playbook) TableName() string {
	return "playbooks"
}

func (p *Playbook) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// maxops/sources/psql/models/preference.go
package models

import "time"

// UserPreference is the server-side preference bag, one row per user.
// Remote values win over locally persisted ones when the client merges.
type UserPreference struct {
	UserID        int       `json:"user_id" gorm:"primaryKey"`
	User          User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Model         string    `json:"model" gorm:"type:varchar(100);default:''"`
	ResponseStyle string    `json:"response_style" gorm:"type:varchar(50);default:''"`
	VoiceEnabled  bool      `json:"voice_enabled" gorm:"default:false"`
	SoundEnabled  bool      `json:"sound_enabled" gorm:"default:true"`
	VoiceID       string    `json:"voice_id" gorm:"type:varchar(100);default:''"`
	VoiceSpeed    float64   `json:"voice_speed" gorm:"default:1"`
	AIThemeColor  string    `json:"aiThemeColor" gorm:"type:varchar(50);default:''"`
	MaxTokens     int       `json:"max_tokens" gorm:"default:0"`
	Temperature   float64   `json:"temperature" gorm:"default:0"`
	NavPinned     bool      `json:"nav_pinned" gorm:"default:false"`
	PanelSizes    string    `json:"panel_sizes" gorm:"type:text;default:''"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}

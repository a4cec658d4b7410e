package dao

import (
	"context"

	"maxops/maxops/sources/psql/models"
	"maxops/maxops/types"

	"gorm.io/gorm"
)

type PreferenceDAO struct {
	DB *gorm.DB
}

func NewPreferenceDAO(db *gorm.DB) *PreferenceDAO {
	return &PreferenceDAO{DB: db}
}

// Get returns the user's preference row, creating a default one on first
// access so PATCH always has something to merge into.
func (dao *PreferenceDAO) Get(ctx context.Context, userID int) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := dao.DB.WithContext(ctx).First(&pref, "user_id = ?", userID).Error
	if err == gorm.ErrRecordNotFound {
		pref = models.UserPreference{UserID: userID, SoundEnabled: true, VoiceSpeed: 1}
		if err := dao.DB.WithContext(ctx).Create(&pref).Error; err != nil {
			return nil, err
		}
		return &pref, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Patch applies only the fields present in the patch and saves the row.
func (dao *PreferenceDAO) Patch(ctx context.Context, userID int, patch types.PreferencePatch) (*models.UserPreference, error) {
	pref, err := dao.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patch.Model != nil {
		pref.Model = *patch.Model
	}
	if patch.ResponseStyle != nil {
		pref.ResponseStyle = *patch.ResponseStyle
	}
	if patch.VoiceEnabled != nil {
		pref.VoiceEnabled = *patch.VoiceEnabled
	}
	if patch.SoundEnabled != nil {
		pref.SoundEnabled = *patch.SoundEnabled
	}
	if patch.VoiceID != nil {
		pref.VoiceID = *patch.VoiceID
	}
	if patch.VoiceSpeed != nil {
		pref.VoiceSpeed = *patch.VoiceSpeed
	}
	if patch.AIThemeColor != nil {
		pref.AIThemeColor = *patch.AIThemeColor
	}
	if patch.MaxTokens != nil {
		pref.MaxTokens = *patch.MaxTokens
	}
	if patch.Temperature != nil {
		pref.Temperature = *patch.Temperature
	}
	if patch.NavPinned != nil {
		pref.NavPinned = *patch.NavPinned
	}
	if patch.PanelSizes != nil {
		pref.PanelSizes = *patch.PanelSizes
	}
	if err := dao.DB.WithContext(ctx).Save(pref).Error; err != nil {
		return nil, err
	}
	return pref, nil
}

// maxops/controllers/preferences.go
package controllers

import (
	"context"

	"maxops/maxops/events"
	"maxops/maxops/sources/psql/dao"
	"maxops/maxops/sources/psql/models"
	"maxops/maxops/types"
)

type PreferencesController struct {
	dao *dao.PreferenceDAO
	bus *events.Bus
}

func NewPreferencesController(prefDAO *dao.PreferenceDAO, bus *events.Bus) *PreferencesController {
	return &PreferencesController{dao: prefDAO, bus: bus}
}

func (c *PreferencesController) Get(ctx context.Context, userID int) (*models.UserPreference, error) {
	return c.dao.Get(ctx, userID)
}

// Patch merges the sent fields and broadcasts the new bag to connected
// surfaces so sibling panels converge without polling the server.
func (c *PreferencesController) Patch(ctx context.Context, userID int, patch types.PreferencePatch) (*models.UserPreference, error) {
	pref, err := c.dao.Patch(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	if c.bus != nil {
		c.bus.Publish(userID, events.Event{Kind: events.KindPreferences, Payload: pref})
		if patch.PanelSizes != nil {
			c.bus.Publish(userID, events.Event{Kind: events.KindLayout, Payload: pref.PanelSizes})
		}
	}
	return pref, nil
}

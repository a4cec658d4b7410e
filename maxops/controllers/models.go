// maxops/controllers/models.go
package controllers

import (
	"context"

	"maxops/maxops/services/llm"
	"maxops/maxops/types"
)

type ModelsController struct {
	llm *llm.Client
}

func NewModelsController(client *llm.Client) *ModelsController {
	return &ModelsController{llm: client}
}

// List returns the available model list; the service layer guarantees a
// non-empty result (fallback of three models when upstream is down).
func (c *ModelsController) List(ctx context.Context) types.ModelsResponse {
	return types.ModelsResponse{Models: c.llm.ListModels(ctx)}
}

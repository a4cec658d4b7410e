// maxops/services/llm/models.go
package llm

import (
	"context"

	"maxops/maxops/types"
	"maxops/maxops/utils/httputils"
	"maxops/maxops/utils/logging"

	"go.uber.org/zap"
)

type upstreamModelList struct {
	Data []types.ModelInfo `json:"data"`
}

// ListModels returns the upstream model registry, or the fallback list when
// the upstream errors out or comes back empty. Never returns an error: a
// missing registry degrades, it does not fail the console.
func (c *Client) ListModels(ctx context.Context) []types.ModelInfo {
	var list upstreamModelList
	err := httputils.GetJSON(ctx, c.baseURL+"/models", &list, c.headers())
	if err != nil {
		logging.AppLogger.Warn("model registry unavailable, serving fallback", zap.Error(err))
		return types.FallbackModels
	}
	if len(list.Data) == 0 {
		return types.FallbackModels
	}
	return list.Data
}

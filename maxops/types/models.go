// maxops/types/models.go
package types

// ModelInfo mirrors the upstream model registry entry shape.
type ModelInfo struct {
	ID      string `json:"id"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

type ModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// FallbackModels is served whenever a model registry is unreachable or
// returns nothing. Exactly three entries; surfaces rely on that.
var FallbackModels = []ModelInfo{
	{ID: "gpt-5", Created: 1722470400, OwnedBy: "openai"},
	{ID: "gpt-4o", Created: 1715367049, OwnedBy: "openai"},
	{ID: "gpt-4o-mini", Created: 1721172741, OwnedBy: "openai"},
}

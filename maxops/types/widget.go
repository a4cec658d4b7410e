// maxops/types/widget.go
package types

// WidgetRequest persists a canvas widget created from an assistant directive.
type WidgetRequest struct {
	Title      string `json:"title"`
	WidgetType string `json:"widget_type"` // "chart" or "table"
	ChartType  string `json:"chart_type,omitempty"`
	DataSource string `json:"data_source"`
	Config     string `json:"config,omitempty"` // serialized chart/table config
}

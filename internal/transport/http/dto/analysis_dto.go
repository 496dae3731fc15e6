package dto

type AnalyzeChartRequest struct {
	ImageURL  string `json:"image_url"`
	ChartType string `json:"chart_type"`
}

type AnalyzeChartResponse struct {
	Analysis string `json:"analysis"`
}

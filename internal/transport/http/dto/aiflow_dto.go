package dto

type ExecuteAIRequest struct {
	Message    string `json:"message"`
	Endpoint   string `json:"endpoint"`
	InputType  string `json:"input_type"`
	OutputType string `json:"output_type"`
}

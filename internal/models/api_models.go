package models

const (
	MsgReviewRequired = "Review text is required"
	MsgAnalyzeFailed  = "Failed to analyze sentiment"
)

type AnalyzeRequest struct {
	Review string `json:"review"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

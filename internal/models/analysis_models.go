package models

import "time"

// AnalysisRecord wraps a finished analysis for history, stats and event sinks.
type AnalysisRecord struct {
	ID         string    `json:"id" dynamodbav:"id"`
	Classifier string    `json:"classifier" dynamodbav:"classifier"`
	Review     string    `json:"review" dynamodbav:"review"`
	Verdict    Verdict   `json:"verdict" dynamodbav:"verdict"`
	CreatedAt  time.Time `json:"createdAt" dynamodbav:"created_at"`
}

type AnalysisStats struct {
	Total    int64 `json:"total"`
	Positive int64 `json:"positive"`
	Negative int64 `json:"negative"`
	Neutral  int64 `json:"neutral"`
}

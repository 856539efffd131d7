package models

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	default:
		return false
	}
}

type WordCounts struct {
	Positive int `json:"positive" dynamodbav:"positive"`
	Negative int `json:"negative" dynamodbav:"negative"`
	Neutral  int `json:"neutral" dynamodbav:"neutral"`
}

// Total is the number of tokens the counts were taken over.
func (w WordCounts) Total() int {
	return w.Positive + w.Negative + w.Neutral
}

// Verdict is the classification returned for a single review.
type Verdict struct {
	Sentiment     Sentiment  `json:"sentiment" dynamodbav:"sentiment"`
	Confidence    float64    `json:"confidence" dynamodbav:"confidence"`
	Explanation   string     `json:"explanation" dynamodbav:"explanation"`
	PositiveWords []string   `json:"positiveWords" dynamodbav:"positive_words"`
	NegativeWords []string   `json:"negativeWords" dynamodbav:"negative_words"`
	WordCounts    WordCounts `json:"wordCounts" dynamodbav:"word_counts"`
}

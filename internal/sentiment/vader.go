package sentiment

import (
	"context"
	"fmt"
	"html"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/reviewsense/internal/models"
)

const (
	vaderPositiveThreshold = 0.20
	vaderNegativeThreshold = -0.20
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and strips the resulting markup so
// only the readable text is left.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	text := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))

	return strings.Join(strings.Fields(text), " ")
}

// Vader scores reviews with the VADER lexicon. Word lists and counts still
// come from the fixed positive and negative lists so verdicts stay comparable
// with the rule-based classifier.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *Vader) Name() string { return "vader" }

func (v *Vader) Classify(_ context.Context, review string) (models.Verdict, error) {
	plainText := ConvertMarkdownToText(review)

	var score float64
	if plainText != "" {
		score = v.analyzer.PolarityScores(plainText).Compound
	}

	label, confidence := labelCompound(score)
	tally := CountWords(plainText)
	counts := tally.Counts()

	return models.Verdict{
		Sentiment:  label,
		Confidence: confidence,
		Explanation: fmt.Sprintf("VADER compound score is %.2f, which reads as %s. The review contains %d positive and %d negative words.",
			score, label, counts.Positive, counts.Negative),
		PositiveWords: tally.PositiveWords,
		NegativeWords: tally.NegativeWords,
		WordCounts:    counts,
	}, nil
}

// labelCompound maps a compound score in [-1, 1] to a label. Confidence grows
// with distance from zero for polar labels and with closeness to zero for neutral.
func labelCompound(score float64) (models.Sentiment, float64) {
	magnitude := math.Min(math.Abs(score), 1)
	switch {
	case score >= vaderPositiveThreshold:
		return models.SentimentPositive, magnitude
	case score <= vaderNegativeThreshold:
		return models.SentimentNegative, magnitude
	default:
		return models.SentimentNeutral, 1 - magnitude
	}
}

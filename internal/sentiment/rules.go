package sentiment

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/spacesedan/reviewsense/internal/models"
)

// RuleBasedConfidence is reported for every rule-based verdict regardless of
// how far apart the counts are.
const RuleBasedConfidence = 0.5

const tieExplanation = "The review contains a similar number of positive and negative words."

var positiveWords = newWordSet(
	"amazing", "awesome", "brilliant", "excellent", "fantastic",
	"fun", "good", "great", "incredible", "love",
	"loved", "marvelous", "outstanding", "superb", "wonderful",
)

var negativeWords = newWordSet(
	"awful", "bad", "boring", "confusing", "disappointing",
	"dreadful", "hate", "hated", "horrible", "poor",
	"terrible", "trash", "worst",
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (s wordSet) has(word string) bool {
	_, ok := s[word]
	return ok
}

// isSpace matches the ECMAScript \s class: unicode.IsSpace plus the byte order
// mark, minus NEL.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// Tokenize lowercases review, drops everything that is not a-z or whitespace
// and splits what is left on whitespace.
func Tokenize(review string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || isSpace(r) {
			return r
		}
		return -1
	}, strings.ToLower(review))

	return strings.FieldsFunc(cleaned, isSpace)
}

// Tally is the word-list match of a single review. Matched words keep the
// order they appear in and duplicates are kept.
type Tally struct {
	Tokens        int
	PositiveWords []string
	NegativeWords []string
}

func CountWords(review string) Tally {
	tokens := Tokenize(review)
	t := Tally{
		Tokens:        len(tokens),
		PositiveWords: []string{},
		NegativeWords: []string{},
	}

	for _, token := range tokens {
		switch {
		case positiveWords.has(token):
			t.PositiveWords = append(t.PositiveWords, token)
		case negativeWords.has(token):
			t.NegativeWords = append(t.NegativeWords, token)
		}
	}
	return t
}

func (t Tally) Counts() models.WordCounts {
	pos, neg := len(t.PositiveWords), len(t.NegativeWords)
	return models.WordCounts{
		Positive: pos,
		Negative: neg,
		Neutral:  t.Tokens - pos - neg,
	}
}

// Leaning is positive or negative when one list matched more often, neutral on a tie.
func (t Tally) Leaning() models.Sentiment {
	pos, neg := len(t.PositiveWords), len(t.NegativeWords)
	switch {
	case pos > neg:
		return models.SentimentPositive
	case neg > pos:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

func explainCounts(s models.Sentiment, counts models.WordCounts) string {
	switch s {
	case models.SentimentPositive:
		return fmt.Sprintf("The review contains more positive words (%d) than negative words (%d).", counts.Positive, counts.Negative)
	case models.SentimentNegative:
		return fmt.Sprintf("The review contains more negative words (%d) than positive words (%d).", counts.Negative, counts.Positive)
	default:
		return tieExplanation
	}
}

// RuleBased classifies by counting fixed positive and negative words. It never
// fails and the same review always yields the same verdict.
type RuleBased struct{}

func NewRuleBased() RuleBased {
	return RuleBased{}
}

func (RuleBased) Name() string { return "rules" }

func (r RuleBased) Classify(_ context.Context, review string) (models.Verdict, error) {
	return r.Analyze(review), nil
}

func (RuleBased) Analyze(review string) models.Verdict {
	tally := CountWords(review)
	counts := tally.Counts()
	leaning := tally.Leaning()

	return models.Verdict{
		Sentiment:     leaning,
		Confidence:    RuleBasedConfidence,
		Explanation:   explainCounts(leaning, counts),
		PositiveWords: tally.PositiveWords,
		NegativeWords: tally.NegativeWords,
		WordCounts:    counts,
	}
}

package sentiment

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spacesedan/reviewsense/internal/models"
)

// verdictPayload mirrors models.Verdict with pointers so absent fields can be
// told apart from zero values.
type verdictPayload struct {
	Sentiment     *string   `json:"sentiment"`
	Confidence    *float64  `json:"confidence"`
	Explanation   *string   `json:"explanation"`
	PositiveWords *[]string `json:"positiveWords"`
	NegativeWords *[]string `json:"negativeWords"`
	WordCounts    *struct {
		Positive *float64 `json:"positive"`
		Negative *float64 `json:"negative"`
		Neutral  *float64 `json:"neutral"`
	} `json:"wordCounts"`
}

// Validate reports every way v breaks the verdict shape. An empty result means v is valid.
func Validate(v models.Verdict) []string {
	var problems []string
	if !v.Sentiment.Valid() {
		problems = append(problems, fmt.Sprintf("sentiment %q is not positive, negative or neutral", v.Sentiment))
	}
	if math.IsNaN(v.Confidence) || v.Confidence < 0 || v.Confidence > 1 {
		problems = append(problems, fmt.Sprintf("confidence %v is outside [0, 1]", v.Confidence))
	}
	if v.PositiveWords == nil {
		problems = append(problems, "positiveWords is missing")
	}
	if v.NegativeWords == nil {
		problems = append(problems, "negativeWords is missing")
	}
	if v.WordCounts.Positive < 0 || v.WordCounts.Negative < 0 || v.WordCounts.Neutral < 0 {
		problems = append(problems, "wordCounts must not be negative")
	}
	return problems
}

// ParseVerdict decodes a provider response into a verdict. Markdown code
// fences around the JSON object are tolerated, unknown fields are ignored.
func ParseVerdict(raw string) (models.Verdict, []string) {
	cleaned := CleanJSONResponse(raw)
	if cleaned == "" {
		return models.Verdict{}, []string{"response is not a JSON object"}
	}

	var p verdictPayload
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return models.Verdict{}, []string{fmt.Sprintf("response is not valid JSON: %v", err)}
	}

	var problems []string
	missing := func(field string) {
		problems = append(problems, field+" is missing")
	}

	var v models.Verdict
	if p.Sentiment == nil {
		missing("sentiment")
	} else {
		v.Sentiment = models.Sentiment(*p.Sentiment)
	}
	if p.Confidence == nil {
		missing("confidence")
	} else {
		v.Confidence = *p.Confidence
	}
	if p.Explanation == nil {
		missing("explanation")
	} else {
		v.Explanation = *p.Explanation
	}
	if p.PositiveWords == nil || *p.PositiveWords == nil {
		missing("positiveWords")
	} else {
		v.PositiveWords = *p.PositiveWords
	}
	if p.NegativeWords == nil || *p.NegativeWords == nil {
		missing("negativeWords")
	} else {
		v.NegativeWords = *p.NegativeWords
	}

	if p.WordCounts == nil {
		missing("wordCounts")
	} else {
		counts := []struct {
			name string
			val  *float64
			dst  *int
		}{
			{"wordCounts.positive", p.WordCounts.Positive, &v.WordCounts.Positive},
			{"wordCounts.negative", p.WordCounts.Negative, &v.WordCounts.Negative},
			{"wordCounts.neutral", p.WordCounts.Neutral, &v.WordCounts.Neutral},
		}
		for _, c := range counts {
			switch {
			case c.val == nil:
				missing(c.name)
			case *c.val != math.Trunc(*c.val):
				problems = append(problems, fmt.Sprintf("%s %v is not a whole number", c.name, *c.val))
			default:
				*c.dst = int(*c.val)
			}
		}
	}

	// Range and enum checks only make sense once every field is present.
	if len(problems) == 0 {
		problems = Validate(v)
	}

	if len(problems) > 0 {
		return models.Verdict{}, problems
	}
	return v, nil
}

// CleanJSONResponse trims whitespace and markdown code fences from a model
// response. It returns "" when what is left does not look like a JSON object.
func CleanJSONResponse(response string) string {
	cleaned := strings.TrimSpace(response)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	if !(strings.HasPrefix(cleaned, "{") && strings.HasSuffix(cleaned, "}")) {
		return ""
	}
	return cleaned
}

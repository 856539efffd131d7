package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"strings"

	"github.com/spacesedan/reviewsense/internal/models"
)

// MsgTryAgain is the only failure text the page ever shows.
const MsgTryAgain = "Failed to analyze sentiment. Please try again."

// maxListedWords caps how many matched words a result card lists.
const maxListedWords = 10

//go:embed templates/*.html
var templateFiles embed.FS

var page = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"percent":   percent,
	"listWords": listWords,
	"title":     title,
}).ParseFS(templateFiles, "templates/*.html"))

// View is everything the page depends on.
type View struct {
	Review  string
	Verdict *models.Verdict
	State   State
	Error   string
}

func (v View) Loading() bool { return v.State == Submitting }

func (v View) CanSubmit() bool { return !v.Loading() && !IsBlank(v.Review) }

func (v View) ShowResult() bool { return v.State == Success && v.Verdict != nil }

// Render writes the page for v. Nothing is written when the template fails.
func Render(w io.Writer, v View) error {
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "index.html", v); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}

func percent(confidence float64) int {
	return int(math.Round(confidence * 100))
}

func listWords(words []string) string {
	if len(words) <= maxListedWords {
		return strings.Join(words, ", ")
	}
	return strings.Join(words[:maxListedWords], ", ") + "..."
}

func title(s models.Sentiment) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

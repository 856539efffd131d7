package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spacesedan/reviewsense/internal/models"
	"github.com/spacesedan/reviewsense/internal/reviewclient"
	"github.com/spacesedan/reviewsense/internal/sentiment"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	local      bool
	jsonOutput bool
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "review",
	Short:         "Classify movie reviews",
	Long:          "review sends movie reviews to a reviewsense server, or classifies them locally with the word-list classifier.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Classify one review (reads stdin when no text is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := reviewText(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		verdict, err := analyze(cmd.Context(), text)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(verdict)
		}
		return printVerdict(cmd.OutOrStdout(), verdict)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&serverURL, "server", "s", "http://localhost:8080", "reviewsense server URL")
	analyzeCmd.Flags().BoolVar(&local, "local", false, "Classify in-process with the word-list classifier")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the verdict as JSON")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 90*time.Second, "Request timeout")

	rootCmd.AddCommand(analyzeCmd)
}

func reviewText(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func analyze(ctx context.Context, text string) (models.Verdict, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if local {
		if strings.TrimSpace(text) == "" {
			return models.Verdict{}, reviewclient.ErrEmptyReview
		}
		return sentiment.NewRuleBased().Analyze(strings.TrimSpace(text)), nil
	}
	return reviewclient.New(serverURL, timeout).Analyze(ctx, text)
}

func printVerdict(w io.Writer, v models.Verdict) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Sentiment\t%s\n", v.Sentiment)
	fmt.Fprintf(tw, "Confidence\t%.0f%%\n", v.Confidence*100)
	fmt.Fprintf(tw, "Positive words\t%d\t%s\n", v.WordCounts.Positive, strings.Join(v.PositiveWords, ", "))
	fmt.Fprintf(tw, "Negative words\t%d\t%s\n", v.WordCounts.Negative, strings.Join(v.NegativeWords, ", "))
	fmt.Fprintf(tw, "Neutral words\t%d\t\n", v.WordCounts.Neutral)
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", v.Explanation)
	return err
}

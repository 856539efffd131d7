package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/reviewsense/internal/metrics"
	"github.com/spacesedan/reviewsense/internal/models"
	"github.com/spacesedan/reviewsense/internal/recording"
	"github.com/spacesedan/reviewsense/internal/sentiment"
)

const defaultRecordTimeout = 3 * time.Second

// Service runs the configured classifier and hands successful verdicts to
// the recorder. It holds no per-request state.
type Service struct {
	classifier    sentiment.Classifier
	recorder      recording.Recorder
	metrics       *metrics.AnalysisMetrics
	recordTimeout time.Duration
	now           func() time.Time
	newID         func() string
}

type Option func(*Service)

func WithRecorder(r recording.Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

func WithMetrics(m *metrics.AnalysisMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithRecordTimeout(d time.Duration) Option {
	return func(s *Service) { s.recordTimeout = d }
}

func NewService(classifier sentiment.Classifier, opts ...Option) *Service {
	s := &Service{
		classifier:    classifier,
		recorder:      recording.Nop{},
		recordTimeout: defaultRecordTimeout,
		now:           time.Now,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ClassifierName() string {
	return s.classifier.Name()
}

// Analyze classifies review. Classifier errors are returned unchanged, recorder
// errors are only logged.
func (s *Service) Analyze(ctx context.Context, review string) (models.Verdict, error) {
	name := s.classifier.Name()
	start := time.Now()

	verdict, err := s.classifier.Classify(ctx, review)
	elapsed := time.Since(start)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ObserveFailure(name, elapsed)
		}
		return models.Verdict{}, err
	}

	if s.metrics != nil {
		s.metrics.ObserveSuccess(name, string(verdict.Sentiment), elapsed)
	}

	record := models.AnalysisRecord{
		ID:         s.newID(),
		Classifier: name,
		Review:     review,
		Verdict:    verdict,
		CreatedAt:  s.now().UTC(),
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.recordTimeout)
	defer cancel()
	if err := s.recorder.Record(recordCtx, record); err != nil {
		if s.metrics != nil {
			s.metrics.RecordErrors.Inc()
		}
		slog.WarnContext(ctx, "[AnalysisService] Failed to record analysis",
			slog.String("id", record.ID),
			slog.String("error", err.Error()))
	}

	slog.DebugContext(ctx, "[AnalysisService] Review classified",
		slog.String("id", record.ID),
		slog.String("classifier", name),
		slog.String("sentiment", string(verdict.Sentiment)),
		slog.Duration("elapsed", elapsed))

	return verdict, nil
}

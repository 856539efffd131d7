package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/reviewsense/config"
	"github.com/spacesedan/reviewsense/internal/clients"
	"github.com/spacesedan/reviewsense/internal/db"
	"github.com/spacesedan/reviewsense/internal/recording"
)

// Check is a named readiness check for an external dependency.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Sinks holds the recorders built from settings along with what the HTTP
// layer needs to report on them.
type Sinks struct {
	Recorder *recording.Multi
	// Stats is nil unless Valkey is configured.
	Stats  *recording.Stats
	Checks []Check

	closers []func()
}

// NewSinks connects every recorder whose settings are present. A sink that is
// configured but unreachable is an error; one that is not configured is skipped.
func NewSinks(ctx context.Context, settings config.Settings) (*Sinks, error) {
	s := &Sinks{Recorder: recording.NewMulti()}

	if settings.DynamoDBTable != "" {
		awsCfg, err := clients.LoadAWSConfig(ctx, settings.AWSRegion)
		if err != nil {
			return nil, s.fail(err)
		}
		history := db.NewAnalysisHistory(clients.NewDynamoDBClient(awsCfg, settings.AWSEndpoint), settings.DynamoDBTable)
		s.Recorder.Add("history", recording.NewHistory(history))
		s.Checks = append(s.Checks, Check{Name: "dynamodb", Ping: history.Ping})
	}

	if settings.ValkeyAddress != "" {
		vc, err := clients.NewValkeyClient(ctx, clients.ValkeyConfig{
			Address:  settings.ValkeyAddress,
			Password: settings.ValkeyPassword,
			TLS:      settings.ValkeyTLS,
		})
		if err != nil {
			return nil, s.fail(err)
		}
		s.closers = append(s.closers, vc.Close)
		s.Stats = recording.NewStats(vc)
		s.Recorder.Add("stats", s.Stats)
		s.Checks = append(s.Checks, Check{Name: "valkey", Ping: vc.Ping})
	}

	if settings.KafkaBroker != "" {
		producer, err := clients.NewKafkaProducer(settings.KafkaBroker)
		if err != nil {
			return nil, s.fail(err)
		}
		s.closers = append(s.closers, producer.Close)
		s.Recorder.Add("events", recording.NewEvents(producer, settings.KafkaAnalysisTopic))
	}

	slog.Info("[Analysis] Recorders ready", slog.Int("count", s.Recorder.Len()))
	return s, nil
}

func (s *Sinks) fail(err error) error {
	s.Close()
	return fmt.Errorf("[Analysis] failed to set up recorders: %w", err)
}

// Close releases connections in reverse order of creation.
func (s *Sinks) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

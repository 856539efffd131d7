// Package recording forwards finished analyses to optional sinks: a history
// table, running counters and an event topic. Sinks never affect the verdict
// returned to the caller.
package recording

import (
	"context"
	"errors"
	"fmt"

	"github.com/spacesedan/reviewsense/internal/models"
)

type Recorder interface {
	Record(ctx context.Context, record models.AnalysisRecord) error
}

// Nop drops every record. It is used when no sink is configured.
type Nop struct{}

func (Nop) Record(context.Context, models.AnalysisRecord) error { return nil }

// Multi sends each record to every named sink and joins their errors.
type Multi struct {
	names []string
	sinks []Recorder
}

func NewMulti() *Multi {
	return &Multi{}
}

func (m *Multi) Add(name string, sink Recorder) {
	m.names = append(m.names, name)
	m.sinks = append(m.sinks, sink)
}

func (m *Multi) Len() int { return len(m.sinks) }

func (m *Multi) Record(ctx context.Context, record models.AnalysisRecord) error {
	var errs []error
	for i, sink := range m.sinks {
		if err := sink.Record(ctx, record); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", m.names[i], err))
		}
	}
	return errors.Join(errs...)
}

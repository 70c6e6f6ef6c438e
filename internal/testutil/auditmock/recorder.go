package auditmock

import (
	"context"
	"sync"

	domain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/audit"
)

var _ domain.Recorder = (*Recorder)(nil)

// Recorder captures recorded events in memory; set Err to simulate a failing
// audit sink.
type Recorder struct {
	mu     sync.Mutex
	Err    error
	Events []domain.Event
}

func (m *Recorder) Record(_ context.Context, e *domain.Event) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, *e)
	return nil
}

func (m *Recorder) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Events)
}

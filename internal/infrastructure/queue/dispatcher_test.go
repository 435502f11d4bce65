package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

type recordingService struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (s *recordingService) Record(_ context.Context, event domain.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingService) byJob(jobID string) []domain.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.ActivityEvent
	for _, e := range s.events {
		if e.JobID == jobID {
			out = append(out, e)
		}
	}
	return out
}

func (s *recordingService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const total = 40
	for i := 0; i < total; i++ {
		d.Enqueue(domain.ActivityEvent{
			Type:      domain.ActivityProposalSubmitted,
			JobID:     fmt.Sprintf("job_%d", i%5),
			Timestamp: time.Now(),
		})
	}

	waitFor(t, func() bool { return svc.count() == total })
}

func TestDispatcher_PerJobOrdering(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// All events for one job land on the same worker, so arrival order is
	// enqueue order even with other jobs interleaved.
	const perJob = 20
	for i := 0; i < perJob; i++ {
		d.Enqueue(domain.ActivityEvent{Type: domain.ActivityJobCreated, JobID: "job_a", ProposalID: fmt.Sprintf("%d", i)})
		d.Enqueue(domain.ActivityEvent{Type: domain.ActivityJobCreated, JobID: "job_b", ProposalID: fmt.Sprintf("%d", i)})
	}

	waitFor(t, func() bool { return svc.count() == 2*perJob })

	for _, jobID := range []string{"job_a", "job_b"} {
		events := svc.byJob(jobID)
		if len(events) != perJob {
			t.Fatalf("%s: expected %d events, got %d", jobID, perJob, len(events))
		}
		for i, e := range events {
			if e.ProposalID != fmt.Sprintf("%d", i) {
				t.Fatalf("%s: event %d out of order: %s", jobID, i, e.ProposalID)
			}
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingService{}, zerolog.Nop())
	for _, jobID := range []string{"job_1", "job_2", "abcdef"} {
		first := d.shardIndex(jobID)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(jobID); got != first {
				t.Fatalf("%s: shard changed from %d to %d", jobID, first, got)
			}
		}
	}
}

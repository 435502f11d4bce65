package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openlance/marketplace-api/internal/api/metrics"
	"github.com/openlance/marketplace-api/internal/core/domain"
	"github.com/openlance/marketplace-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists audit-trail
// events. It runs behind the dispatcher workers; failures are counted and
// logged but never propagate to the request that produced the event.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

func (s *activityService) Record(ctx context.Context, event domain.ActivityEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.ActivityErrorsTotal.Inc()
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivityEventsTotal.WithLabelValues(string(event.Type)).Inc()
	s.log.Debug().
		Str("type", string(event.Type)).
		Str("job_id", event.JobID).
		Msg("activity recorded")
	return nil
}

package ports

import (
	"context"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

// ActivitySink accepts activity events for asynchronous recording. Enqueue
// must be cheap and non-blocking from the caller's perspective; delivery is
// best-effort and never fails the originating request.
type ActivitySink interface {
	Enqueue(event domain.ActivityEvent)
}

// ActivityService persists a single activity event. Implementations run
// behind the dispatcher workers.
type ActivityService interface {
	Record(ctx context.Context, event domain.ActivityEvent) error
}

// ActivityRepository defines persistence for the activity audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
}

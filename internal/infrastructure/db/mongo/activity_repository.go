package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

const collectionActivity = "activity_log"

// ActivityRepository persists audit-trail events to the activity_log
// collection. Append-only.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(collectionActivity)}
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"type":        string(event.Type),
		"job_id":      event.JobID,
		"actor_id":    event.ActorID,
		"timestamp":   event.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.ProposalID != "" {
		doc["proposal_id"] = event.ProposalID
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

// EnsureIndexes creates supporting indexes on the activity_log collection.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	return err
}

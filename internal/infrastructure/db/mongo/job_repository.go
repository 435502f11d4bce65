package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

const collectionJobs = "jobs"

// JobRepository implements ports.JobRepository backed by MongoDB.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(collectionJobs)}
}

type jobDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Title              string             `bson:"title"`
	Description        string             `bson:"description"`
	Budget             float64            `bson:"budget"`
	ClientID           string             `bson:"client_id"`
	Status             string             `bson:"status"`
	AcceptedProposalID string             `bson:"accepted_proposal_id,omitempty"`
	CreatedAt          time.Time          `bson:"created_at"`
}

func (d jobDoc) toDomain() *domain.Job {
	return &domain.Job{
		ID:                 d.ID.Hex(),
		Title:              d.Title,
		Description:        d.Description,
		Budget:             d.Budget,
		ClientID:           d.ClientID,
		Status:             domain.JobStatus(d.Status),
		AcceptedProposalID: d.AcceptedProposalID,
		CreatedAt:          d.CreatedAt.UTC(),
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := jobDoc{
		Title:       job.Title,
		Description: job.Description,
		Budget:      job.Budget,
		ClientID:    job.ClientID,
		Status:      string(job.Status),
		CreatedAt:   job.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *JobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []*domain.Job
	for cur.Next(ctx) {
		var doc jobDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, doc.toDomain())
	}
	return jobs, cur.Err()
}

// AssignIfOpen performs the conditional open→assigned transition. The status
// filter makes the write a compare-and-swap: under concurrent acceptance of
// proposals on the same job, exactly one update matches.
func (r *JobRepository) AssignIfOpen(ctx context.Context, jobID, proposalID string) error {
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "status": string(domain.JobOpen)},
		bson.M{"$set": bson.M{
			"status":               string(domain.JobAssigned),
			"accepted_proposal_id": proposalID,
		}},
	)
	if err != nil {
		return fmt.Errorf("assign job: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotOpen
	}
	return nil
}

// Unassign rolls an assigned job back to open. Compensation path only.
func (r *JobRepository) Unassign(ctx context.Context, jobID string) error {
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "status": string(domain.JobAssigned)},
		bson.M{
			"$set":   bson.M{"status": string(domain.JobOpen)},
			"$unset": bson.M{"accepted_proposal_id": ""},
		},
	)
	if err != nil {
		return fmt.Errorf("unassign job: %w", err)
	}
	return nil
}

// EnsureIndexes creates supporting indexes on the jobs collection.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

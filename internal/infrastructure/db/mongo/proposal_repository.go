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

const collectionProposals = "proposals"

// ProposalRepository implements ports.ProposalRepository backed by MongoDB.
type ProposalRepository struct {
	coll *mongo.Collection
}

func NewProposalRepository(db *mongo.Database) *ProposalRepository {
	return &ProposalRepository{coll: db.Collection(collectionProposals)}
}

type proposalDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	JobID        string             `bson:"job_id"`
	FreelancerID string             `bson:"freelancer_id"`
	Amount       float64            `bson:"amount"`
	Message      string             `bson:"message,omitempty"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d proposalDoc) toDomain() *domain.Proposal {
	return &domain.Proposal{
		ID:           d.ID.Hex(),
		JobID:        d.JobID,
		FreelancerID: d.FreelancerID,
		Amount:       d.Amount,
		Message:      d.Message,
		Status:       domain.ProposalStatus(d.Status),
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

func (r *ProposalRepository) Create(ctx context.Context, proposal *domain.Proposal) (*domain.Proposal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := proposalDoc{
		JobID:        proposal.JobID,
		FreelancerID: proposal.FreelancerID,
		Amount:       proposal.Amount,
		Message:      proposal.Message,
		Status:       string(proposal.Status),
		CreatedAt:    proposal.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert proposal: %w", err)
	}

	created := *proposal
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProposalRepository) FindByID(ctx context.Context, id string) (*domain.Proposal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProposalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc proposalDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("find proposal: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProposalRepository) ListByJob(ctx context.Context, jobID string) ([]*domain.Proposal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"job_id": jobID})
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer cur.Close(ctx)

	var proposals []*domain.Proposal
	for cur.Next(ctx) {
		var doc proposalDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode proposal: %w", err)
		}
		proposals = append(proposals, doc.toDomain())
	}
	return proposals, cur.Err()
}

// UpdateStatus transitions a proposal from the expected prior status to the
// new one as a conditional write.
func (r *ProposalRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ProposalStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProposalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "status": string(from)},
		bson.M{"$set": bson.M{"status": string(to)}},
	)
	if err != nil {
		return fmt.Errorf("update proposal status: %w", err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing proposal from one in the wrong state.
		if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Err(); errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrProposalNotFound
		}
		return domain.ErrProposalNotPending
	}
	return nil
}

// EnsureIndexes creates supporting indexes on the proposals collection.
func (r *ProposalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "job_id", Value: 1}},
	})
	return err
}

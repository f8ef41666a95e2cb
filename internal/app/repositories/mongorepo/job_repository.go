package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/app/repositories"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.IJobRepository = (*JobRepository)(nil)

// JobRepository stores job postings as documents
type JobRepository struct {
	coll *mongo.Collection
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(database *mongo.Database) *JobRepository {
	return &JobRepository{coll: database.Collection(jobsCollection)}
}

// Create inserts a new posting
func (r *JobRepository) Create(ctx context.Context, j *models.JobPosting) error {
	if _, err := r.coll.InsertOne(ctx, j); err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}
	return nil
}

// GetByID retrieves a posting by id
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.JobPosting, error) {
	var j models.JobPosting
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding job: %w", err)
	}
	return &j, nil
}

// GetByIDs loads several postings keyed by id
func (r *JobRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*models.JobPosting, error) {
	result := make(map[string]*models.JobPosting, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	var jobs []*models.JobPosting
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("error decoding jobs: %w", err)
	}
	for _, j := range jobs {
		result[j.ID] = j
	}
	return result, nil
}

// List returns one page of postings matching the filter, newest first
func (r *JobRepository) List(ctx context.Context, filter models.JobFilter, page helpers.Page) ([]*models.JobPosting, int64, error) {
	query := bson.M{}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.ExcludeExpiry {
		query["$or"] = bson.A{
			bson.M{"expiryDate": bson.M{"$exists": false}},
			bson.M{"expiryDate": nil},
			bson.M{"expiryDate": bson.M{"$gte": filter.Now}},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting jobs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Size))
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing jobs: %w", err)
	}
	jobs := make([]*models.JobPosting, 0, page.Size)
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, 0, fmt.Errorf("error decoding jobs: %w", err)
	}
	return jobs, total, nil
}

// UpdateStatus sets the moderation status and returns the updated posting
func (r *JobRepository) UpdateStatus(ctx context.Context, id string, status models.JobStatus, at time.Time) (*models.JobPosting, error) {
	var j models.JobPosting
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": at}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating job status: %w", err)
	}
	return &j, nil
}

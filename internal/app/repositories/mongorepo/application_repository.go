package mongorepo

import (
	"context"
	"fmt"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/app/repositories"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/dberrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.IApplicationRepository = (*ApplicationRepository)(nil)

// ApplicationRepository stores applications as documents
type ApplicationRepository struct {
	coll *mongo.Collection
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(database *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: database.Collection(applicationsCollection)}
}

// Create inserts an application; the unique (userId, jobId) index enforces one per job
func (r *ApplicationRepository) Create(ctx context.Context, a *models.Application) error {
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		if dberrors.IsMongoDuplicateKeyError(err, applicationUserJob) {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// Exists reports whether the user already applied to the job
func (r *ApplicationRepository) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"userId": userID, "jobId": jobID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking application: %w", err)
	}
	return n > 0, nil
}

// ListByUser returns the user's applications, newest first
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]*models.Application, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

// ListByJob returns the applications for a job, newest first
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*models.Application, error) {
	return r.list(ctx, bson.M{"jobId": jobID})
}

func (r *ApplicationRepository) list(ctx context.Context, filter bson.M) ([]*models.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "appliedAt", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	applications := []*models.Application{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, fmt.Errorf("error decoding applications: %w", err)
	}
	return applications, nil
}

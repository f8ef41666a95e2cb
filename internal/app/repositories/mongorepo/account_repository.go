package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/app/repositories"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/dberrors"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxUpdateAttempts bounds optimistic retries when two profile writes race
const maxUpdateAttempts = 5

// ErrConcurrentUpdate is returned when the optimistic retries are exhausted.
// It is a conflict so callers can retry the whole request.
var ErrConcurrentUpdate = apperrors.NewConflictError("Profile was modified by another request, please retry")

var _ repositories.IAccountRepository = (*AccountRepository)(nil)

// AccountRepository stores accounts as documents keyed by their UUID
type AccountRepository struct {
	coll *mongo.Collection
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(database *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: database.Collection(accountsCollection)}
}

// Create inserts a new account
func (r *AccountRepository) Create(ctx context.Context, a *models.Account) error {
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		if dberrors.IsMongoDuplicateKeyError(err, accountEmailIndex) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by id
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByEmail retrieves an account by its normalized email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	var a models.Account
	err := r.coll.FindOne(ctx, filter).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding account: %w", err)
	}
	return &a, nil
}

// EmailExists checks if an email already exists
func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return n > 0, nil
}

// GetByIDs loads several accounts keyed by id
func (r *AccountRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*models.Account, error) {
	result := make(map[string]*models.Account, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	var accounts []*models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("error decoding accounts: %w", err)
	}
	for _, a := range accounts {
		result[a.ID] = a
	}
	return result, nil
}

// ListByRole returns one page of accounts with the given role, newest first
func (r *AccountRepository) ListByRole(ctx context.Context, role models.RoleType, page helpers.Page) ([]*models.Account, int64, error) {
	filter := bson.M{"role": role}
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting accounts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Size))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing accounts: %w", err)
	}
	accounts := make([]*models.Account, 0, page.Size)
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, 0, fmt.Errorf("error decoding accounts: %w", err)
	}
	return accounts, total, nil
}

// UpdateProfile replaces the document only if its version is unchanged since it was read,
// retrying with a fresh copy when another write won the race.
func (r *AccountRepository) UpdateProfile(ctx context.Context, id string, mutate repositories.AccountMutator) (*models.Account, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		expected := current.Version

		if err := mutate(current); err != nil {
			return nil, err
		}
		current.ID = id
		current.Version = expected + 1
		current.UpdatedAt = time.Now().UTC()

		res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id, "version": expected}, current)
		if err != nil {
			return nil, fmt.Errorf("error updating profile: %w", err)
		}
		if res.MatchedCount == 1 {
			return current, nil
		}
	}
	return nil, ErrConcurrentUpdate
}

package repositories

import (
	"context"
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/db"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
)

// AccountMutator changes a freshly loaded account inside the store's atomic update.
// Returning an error aborts the update without writing anything. The store may call
// it more than once when it has to retry.
type AccountMutator func(account *models.Account) error

// IAccountRepository defines account persistence
type IAccountRepository interface {
	// Create inserts a new account; a duplicate email yields apperrors.ErrEmailAlreadyExists
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*models.Account, error)
	ListByRole(ctx context.Context, role models.RoleType, page helpers.Page) ([]*models.Account, int64, error)
	// UpdateProfile loads, mutates and writes the profile of one account atomically
	UpdateProfile(ctx context.Context, id string, mutate AccountMutator) (*models.Account, error)
}

// IJobRepository defines job posting persistence
type IJobRepository interface {
	Create(ctx context.Context, job *models.JobPosting) error
	GetByID(ctx context.Context, id string) (*models.JobPosting, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*models.JobPosting, error)
	List(ctx context.Context, filter models.JobFilter, page helpers.Page) ([]*models.JobPosting, int64, error)
	UpdateStatus(ctx context.Context, id string, status models.JobStatus, at time.Time) (*models.JobPosting, error)
}

// IApplicationRepository defines application persistence
type IApplicationRepository interface {
	// Create inserts an application; a second one for the same user and job yields apperrors.ErrAlreadyApplied
	Create(ctx context.Context, application *models.Application) error
	Exists(ctx context.Context, userID, jobID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]*models.Application, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	Accounts     IAccountRepository
	Jobs         IJobRepository
	Applications IApplicationRepository
}

// NewRepositories initializes the PostgreSQL repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		Accounts:     NewAccountRepository(database),
		Jobs:         NewJobRepository(database),
		Applications: NewApplicationRepository(database),
	}
}

// nonNil keeps JSONB columns from receiving SQL NULL for empty lists
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Package memory keeps records in process memory. It backs the "memory" database
// driver for local development and the service and HTTP tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/app/repositories"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
)

// Store holds every collection behind one lock
type Store struct {
	mu           sync.RWMutex
	accounts     map[string]*models.Account
	emails       map[string]string
	jobs         map[string]*models.JobPosting
	applications map[string]*models.Application
	applied      map[string]string
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		accounts:     make(map[string]*models.Account),
		emails:       make(map[string]string),
		jobs:         make(map[string]*models.JobPosting),
		applications: make(map[string]*models.Application),
		applied:      make(map[string]string),
	}
}

// NewRepositories wires the in-memory repositories over one store
func NewRepositories(store *Store) *repositories.Repositories {
	return &repositories.Repositories{
		Accounts:     &AccountRepository{store: store},
		Jobs:         &JobRepository{store: store},
		Applications: &ApplicationRepository{store: store},
	}
}

var (
	_ repositories.IAccountRepository     = (*AccountRepository)(nil)
	_ repositories.IJobRepository         = (*JobRepository)(nil)
	_ repositories.IApplicationRepository = (*ApplicationRepository)(nil)
)

// AccountRepository is the in-memory account store
type AccountRepository struct {
	store *Store
}

// Create inserts a new account
func (r *AccountRepository) Create(_ context.Context, a *models.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[a.Email]; taken {
		return apperrors.ErrEmailAlreadyExists
	}
	s.accounts[a.ID] = a.Clone()
	s.emails[a.Email] = a.ID
	return nil
}

// GetByID retrieves an account by id
func (r *AccountRepository) GetByID(_ context.Context, id string) (*models.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return a.Clone(), nil
}

// GetByEmail retrieves an account by its normalized email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.store.mu.RLock()
	id, ok := r.store.emails[email]
	r.store.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return r.GetByID(ctx, id)
}

// EmailExists checks if an email already exists
func (r *AccountRepository) EmailExists(_ context.Context, email string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.emails[email]
	return ok, nil
}

// GetByIDs loads several accounts keyed by id
func (r *AccountRepository) GetByIDs(_ context.Context, ids []string) (map[string]*models.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*models.Account, len(ids))
	for _, id := range ids {
		if a, ok := s.accounts[id]; ok {
			result[id] = a.Clone()
		}
	}
	return result, nil
}

// ListByRole returns one page of accounts with the given role, newest first
func (r *AccountRepository) ListByRole(_ context.Context, role models.RoleType, page helpers.Page) ([]*models.Account, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.Account
	for _, a := range s.accounts {
		if a.Role == role {
			matched = append(matched, a)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return newerFirst(matched[i].CreatedAt, matched[j].CreatedAt, matched[i].ID, matched[j].ID)
	})

	start, end := helpers.CalculateSliceIndices(page, len(matched))
	out := make([]*models.Account, 0, end-start)
	for _, a := range matched[start:end] {
		out = append(out, a.Clone())
	}
	return out, int64(len(matched)), nil
}

// UpdateProfile mutates a copy under the write lock and swaps it in only on success
func (r *AccountRepository) UpdateProfile(_ context.Context, id string, mutate repositories.AccountMutator) (*models.Account, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}

	working := current.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}

	// identity fields are not part of a profile write
	working.ID = current.ID
	working.Email = current.Email
	working.Password = current.Password
	working.Role = current.Role
	working.CreatedAt = current.CreatedAt
	working.Version = current.Version + 1
	working.UpdatedAt = time.Now().UTC()

	s.accounts[id] = working
	return working.Clone(), nil
}

// JobRepository is the in-memory job store
type JobRepository struct {
	store *Store
}

// Create inserts a new posting
func (r *JobRepository) Create(_ context.Context, j *models.JobPosting) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.jobs[j.ID] = cloneJob(j)
	return nil
}

// GetByID retrieves a posting by id
func (r *JobRepository) GetByID(_ context.Context, id string) (*models.JobPosting, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	j, ok := r.store.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	return cloneJob(j), nil
}

// GetByIDs loads several postings keyed by id
func (r *JobRepository) GetByIDs(_ context.Context, ids []string) (map[string]*models.JobPosting, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	result := make(map[string]*models.JobPosting, len(ids))
	for _, id := range ids {
		if j, ok := r.store.jobs[id]; ok {
			result[id] = cloneJob(j)
		}
	}
	return result, nil
}

// List returns one page of postings matching the filter, newest first
func (r *JobRepository) List(_ context.Context, filter models.JobFilter, page helpers.Page) ([]*models.JobPosting, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []*models.JobPosting
	for _, j := range r.store.jobs {
		if filter.Status != nil && j.Status != *filter.Status {
			continue
		}
		if filter.ExcludeExpiry && j.IsExpired(filter.Now) {
			continue
		}
		matched = append(matched, j)
	}
	sort.Slice(matched, func(i, k int) bool {
		return newerFirst(matched[i].CreatedAt, matched[k].CreatedAt, matched[i].ID, matched[k].ID)
	})

	start, end := helpers.CalculateSliceIndices(page, len(matched))
	out := make([]*models.JobPosting, 0, end-start)
	for _, j := range matched[start:end] {
		out = append(out, cloneJob(j))
	}
	return out, int64(len(matched)), nil
}

// UpdateStatus sets the moderation status and returns the updated posting
func (r *JobRepository) UpdateStatus(_ context.Context, id string, status models.JobStatus, at time.Time) (*models.JobPosting, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	j, ok := r.store.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	j.Status = status
	j.UpdatedAt = at
	return cloneJob(j), nil
}

// ApplicationRepository is the in-memory application store
type ApplicationRepository struct {
	store *Store
}

func appliedKey(userID, jobID string) string {
	return userID + "\x00" + jobID
}

// Create inserts an application, one per user and job
func (r *ApplicationRepository) Create(_ context.Context, a *models.Application) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := appliedKey(a.UserID, a.JobID)
	if _, exists := s.applied[key]; exists {
		return apperrors.ErrAlreadyApplied
	}
	c := *a
	s.applications[a.ID] = &c
	s.applied[key] = a.ID
	return nil
}

// Exists reports whether the user already applied to the job
func (r *ApplicationRepository) Exists(_ context.Context, userID, jobID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.applied[appliedKey(userID, jobID)]
	return ok, nil
}

// ListByUser returns the user's applications, newest first
func (r *ApplicationRepository) ListByUser(_ context.Context, userID string) ([]*models.Application, error) {
	return r.list(func(a *models.Application) bool { return a.UserID == userID }), nil
}

// ListByJob returns the applications for a job, newest first
func (r *ApplicationRepository) ListByJob(_ context.Context, jobID string) ([]*models.Application, error) {
	return r.list(func(a *models.Application) bool { return a.JobID == jobID }), nil
}

func (r *ApplicationRepository) list(match func(*models.Application) bool) []*models.Application {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*models.Application{}
	for _, a := range r.store.applications {
		if match(a) {
			c := *a
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return newerFirst(out[i].AppliedAt, out[j].AppliedAt, out[i].ID, out[j].ID)
	})
	return out
}

func newerFirst(a, b time.Time, idA, idB string) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return strings.Compare(idA, idB) < 0
}

func cloneJob(j *models.JobPosting) *models.JobPosting {
	c := *j
	c.Profiles = append([]string(nil), j.Profiles...)
	if j.ExpiryDate != nil {
		t := *j.ExpiryDate
		c.ExpiryDate = &t
	}
	return &c
}

package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
)

func seedStudent(t *testing.T, repo *AccountRepository) *models.Account {
	t.Helper()
	account := &models.Account{
		ID:       "acc-1",
		Email:    "asha@campus.test",
		Password: "hash",
		Role:     models.RoleStudent,
		Skills:   []string{"Go"},
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	repo := &AccountRepository{store: NewStore()}
	seedStudent(t, repo)

	err := repo.Create(context.Background(), &models.Account{ID: "acc-2", Email: "asha@campus.test"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAccountRepository_UpdateProfileFailureLeavesRecord(t *testing.T) {
	repo := &AccountRepository{store: NewStore()}
	seedStudent(t, repo)

	boom := errors.New("rejected")
	_, err := repo.UpdateProfile(context.Background(), "acc-1", func(a *models.Account) error {
		a.FullName = "Changed"
		a.Skills = append(a.Skills, "Rust")
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := repo.GetByID(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Empty(t, stored.FullName)
	assert.Equal(t, []string{"Go"}, stored.Skills)
	assert.Equal(t, int64(0), stored.Version)
}

func TestAccountRepository_UpdateProfileKeepsIdentity(t *testing.T) {
	repo := &AccountRepository{store: NewStore()}
	seedStudent(t, repo)

	updated, err := repo.UpdateProfile(context.Background(), "acc-1", func(a *models.Account) error {
		a.Email = "other@campus.test"
		a.Role = models.RoleAdmin
		a.FullName = "Asha Verma"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@campus.test", updated.Email)
	assert.Equal(t, models.RoleStudent, updated.Role)
	assert.Equal(t, "Asha Verma", updated.FullName)
	assert.Equal(t, int64(1), updated.Version)
}

func TestAccountRepository_ConcurrentUpdatesSerialize(t *testing.T) {
	repo := &AccountRepository{store: NewStore()}
	seedStudent(t, repo)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.UpdateProfile(context.Background(), "acc-1", func(a *models.Account) error {
				a.Skills = append(a.Skills, fmt.Sprintf("skill-%d", i))
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stored, err := repo.GetByID(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Len(t, stored.Skills, writers+1)
	assert.Equal(t, int64(writers), stored.Version)
}

func TestAccountRepository_UnknownID(t *testing.T) {
	repo := &AccountRepository{store: NewStore()}

	_, err := repo.UpdateProfile(context.Background(), "missing", func(*models.Account) error { return nil })
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestApplicationRepository_OnePerUserAndJob(t *testing.T) {
	repo := &ApplicationRepository{store: NewStore()}
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Application{ID: "app-1", UserID: "u1", JobID: "j1"}))
	err := repo.Create(ctx, &models.Application{ID: "app-2", UserID: "u1", JobID: "j1"})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
	require.NoError(t, repo.Create(ctx, &models.Application{ID: "app-3", UserID: "u1", JobID: "j2"}))

	exists, err := repo.Exists(ctx, "u1", "j1")
	require.NoError(t, err)
	assert.True(t, exists)

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

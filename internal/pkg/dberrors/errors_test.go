package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"}

	assert.True(t, IsDuplicateConstraintError(fmt.Errorf("insert: %w", pgErr), "accounts_email_key"))
	assert.False(t, IsDuplicateConstraintError(pgErr, "applications_user_job_key"))
	assert.False(t, IsDuplicateConstraintError(&pgconn.PgError{Code: "23503", ConstraintName: "accounts_email_key"}, "accounts_email_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), "accounts_email_key"))
}

func TestIsMongoDuplicateKeyError(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{
		Code:    11000,
		Message: "E11000 duplicate key error collection: placement.accounts index: email_unique dup key",
	}}}

	assert.True(t, IsMongoDuplicateKeyError(dup, ""))
	assert.True(t, IsMongoDuplicateKeyError(dup, "email_unique"))
	assert.False(t, IsMongoDuplicateKeyError(dup, "user_job_unique"))
	assert.False(t, IsMongoDuplicateKeyError(errors.New("E11000"), ""))
}

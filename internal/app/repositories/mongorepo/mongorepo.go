// Package mongorepo implements the repository interfaces on MongoDB.
package mongorepo

import (
	"context"
	"fmt"

	"github.com/campusconnect/placement-api/internal/app/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection and index names
const (
	accountsCollection     = "accounts"
	jobsCollection         = "jobs"
	applicationsCollection = "applications"

	accountEmailIndex   = "accounts_email_key"
	applicationUserJob  = "applications_user_job_key"
	jobStatusCreatedIdx = "jobs_status_created_idx"
)

// NewRepositories wires the MongoDB repositories
func NewRepositories(database *mongo.Database) *repositories.Repositories {
	return &repositories.Repositories{
		Accounts:     NewAccountRepository(database),
		Jobs:         NewJobRepository(database),
		Applications: NewApplicationRepository(database),
	}
}

// EnsureIndexes creates the unique and listing indexes the repositories rely on
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		accountsCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName(accountEmailIndex).SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "role", Value: 1}, {Key: "createdAt", Value: -1}},
			},
		},
		jobsCollection: {
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName(jobStatusCreatedIdx),
			},
		},
		applicationsCollection: {
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "jobId", Value: 1}},
				Options: options.Index().SetName(applicationUserJob).SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "jobId", Value: 1}, {Key: "appliedAt", Value: -1}},
			},
		},
	}

	for collection, idx := range indexes {
		if _, err := database.Collection(collection).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

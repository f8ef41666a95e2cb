package models

import "time"

// Application records a student's submission to a job posting
type Application struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	JobID     string    `json:"jobId" bson:"jobId"`
	FullName  string    `json:"fullName" bson:"fullName"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	Resume    string    `json:"resume" bson:"resume"`
	AppliedAt time.Time `json:"appliedAt" bson:"appliedAt"`
}

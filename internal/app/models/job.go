package models

import "time"

// JobPosting is a placement opportunity published by the placement cell
type JobPosting struct {
	ID           string     `json:"id" bson:"_id"`
	CompanyName  string     `json:"companyName" bson:"companyName"`
	Profiles     []string   `json:"profiles" bson:"profiles"`
	CtcOrStipend string     `json:"ctcOrStipend" bson:"ctcOrStipend"`
	Location     string     `json:"location" bson:"location"`
	OfferType    string     `json:"offerType" bson:"offerType"`
	Description  string     `json:"description" bson:"description"`
	Status       JobStatus  `json:"status" bson:"status"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	CreatedBy    string     `json:"createdBy" bson:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// IsExpired reports whether the posting has an expiry in the past relative to now
func (j *JobPosting) IsExpired(now time.Time) bool {
	return j.ExpiryDate != nil && j.ExpiryDate.Before(now)
}

// JobFilter narrows job listings
type JobFilter struct {
	Status        *JobStatus
	ExcludeExpiry bool // drop postings whose expiry has passed
	Now           time.Time
}

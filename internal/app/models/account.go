package models

import (
	"time"
)

// Account is a registered student or admin together with the embedded profile
type Account struct {
	ID       string   `json:"id" bson:"_id" validate:"required"`
	Email    string   `json:"email" bson:"email" validate:"required,email,max=255"`
	Password string   `json:"-" bson:"password" validate:"required"`
	Role     RoleType `json:"role" bson:"role" validate:"required,oneof=student admin"`
	RollNo   string   `json:"rollNo" bson:"rollNo" validate:"max=50"`

	FullName         string `json:"fullName" bson:"fullName" validate:"max=100"`
	MobileNo         string `json:"mobileNo" bson:"mobileNo" validate:"omitempty,phone"`
	WhatsappNo       string `json:"whatsappNo" bson:"whatsappNo" validate:"omitempty,phone"`
	MailID           string `json:"mailId" bson:"mailId" validate:"omitempty,email,max=255"`
	FatherName       string `json:"fatherName" bson:"fatherName" validate:"max=100"`
	FatherNumber     string `json:"fatherNumber" bson:"fatherNumber" validate:"omitempty,phone"`
	School           string `json:"school" bson:"school" validate:"max=200"`
	ExistingBacklogs string `json:"existingBacklogs" bson:"existingBacklogs" validate:"max=20"`
	AreaOfInterest   string `json:"areaOfInterest" bson:"areaOfInterest" validate:"max=200"`
	ReadyToRelocate  bool   `json:"readyToRelocate" bson:"readyToRelocate"`

	Education      *Education      `json:"education,omitempty" bson:"education,omitempty"`
	Certifications []Certification `json:"certifications" bson:"certifications" validate:"dive"`
	Skills         []string        `json:"skills" bson:"skills" validate:"dive,max=100"`
	Experience     []Experience    `json:"experience" bson:"experience" validate:"dive"`

	ProfilePhoto *string `json:"profilePhoto" bson:"profilePhoto,omitempty" validate:"omitempty,max=500"`
	Resume       *string `json:"resume" bson:"resume,omitempty" validate:"omitempty,max=500"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
	Version   int64     `json:"-" bson:"version"`
}

// Education holds the four schooling levels tracked by placement cells
type Education struct {
	Tenth      SchoolRecord `json:"tenth" bson:"tenth"`
	Twelfth    SchoolRecord `json:"twelfth" bson:"twelfth"`
	Graduation DegreeRecord `json:"graduation" bson:"graduation"`
	Masters    DegreeRecord `json:"masters" bson:"masters"`
}

// SchoolRecord is a secondary-school result
type SchoolRecord struct {
	Percentage  string `json:"percentage" bson:"percentage" validate:"max=20"`
	PassingYear string `json:"passingYear" bson:"passingYear" validate:"max=10"`
}

// DegreeRecord is a university degree result
type DegreeRecord struct {
	Degree           string `json:"degree" bson:"degree" validate:"max=100"`
	PercentageOrCGPA string `json:"percentageOrCGPA" bson:"percentageOrCGPA" validate:"max=20"`
	PassingYear      string `json:"passingYear" bson:"passingYear" validate:"max=10"`
}

// Certification is one positional certification entry
type Certification struct {
	Name  string `json:"name" bson:"name" validate:"max=200"`
	Image string `json:"image" bson:"image" validate:"max=500"`
}

// Experience is one work experience entry
type Experience struct {
	HasExperience    bool   `json:"hasExperience" bson:"hasExperience"`
	OrganizationName string `json:"organizationName" bson:"organizationName" validate:"max=200"`
	Duration         string `json:"duration" bson:"duration" validate:"max=100"`
	Details          string `json:"details" bson:"details" validate:"max=2000"`
}

// NoExperience returns the placeholder entry stored when a student has no work experience
func NoExperience() Experience {
	return Experience{}
}

// IsAdmin reports whether the account has the admin role
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Clone returns a deep copy so a store can hand out records without sharing slices
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	if a.Education != nil {
		edu := *a.Education
		c.Education = &edu
	}
	c.Certifications = append([]Certification(nil), a.Certifications...)
	c.Skills = append([]string(nil), a.Skills...)
	c.Experience = append([]Experience(nil), a.Experience...)
	if a.ProfilePhoto != nil {
		p := *a.ProfilePhoto
		c.ProfilePhoto = &p
	}
	if a.Resume != nil {
		r := *a.Resume
		c.Resume = &r
	}
	return &c
}

package services

import (
	"github.com/campusconnect/placement-api/internal/app/repositories"
	"github.com/campusconnect/placement-api/internal/pkg/auth"
	"github.com/campusconnect/placement-api/internal/pkg/events"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
	"github.com/rs/zerolog"
)

// Services defined in this package:
// - AuthService: registration, login and token identity
// - ProfileService: profile reads, form updates and direct file uploads
// - JobService: job postings and their moderation
// - ApplicationService: student applications and their listings
type Services struct {
	Auth         *AuthService
	Profile      ProfileService
	Jobs         JobService
	Applications ApplicationService
}

// Dependencies carries what the services need from the outside
type Dependencies struct {
	Repos      *repositories.Repositories
	JWTService *auth.JWTService
	Storage    filestorage.FileStorage
	Publisher  events.Publisher
	Profile    ProfileOptions
	Logger     zerolog.Logger
}

// NewServices builds every service over one set of repositories
func NewServices(deps Dependencies) *Services {
	component := func(name string) zerolog.Logger {
		return deps.Logger.With().Str("component", name).Logger()
	}
	return &Services{
		Auth:         NewAuthService(deps.Repos.Accounts, deps.JWTService, component("auth_service")),
		Profile:      NewProfileService(deps.Repos.Accounts, deps.Storage, deps.Publisher, deps.Profile, component("profile_service")),
		Jobs:         NewJobService(deps.Repos.Jobs, deps.Publisher, component("job_service")),
		Applications: NewApplicationService(deps.Repos, deps.Publisher, component("application_service")),
	}
}

package services

import (
	portsrepo "github.com/vidstream/vidstream_backend/internal/core/ports/repositories"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/platform/config"
)

// NewContainer creates a new service container with properly initialized
// dependencies.
func NewContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, assetStorage portssvc.AssetStorageSvcFacade) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.AssetStorage = assetStorage
	container.Token = NewTokenService(cfg)
	container.Session = NewSessionService(repos.UserRepo, container.Token)
	container.Registration = NewRegistrationService(repos.UserRepo, assetStorage)
	container.User = NewUserService(repos.UserRepo)
	container.Profile = NewProfileService(repos.UserRepo, repos.SubscriptionRepo)
	container.Subscription = NewSubscriptionService(repos.UserRepo, repos.SubscriptionRepo)

	return container
}

package service

import (
	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/internal/validators"
	"github.com/MKhiriev/go-user-service/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices builds every service over storages. Auth and user services are
// wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	userValidator := validators.NewUserValidator()

	return &Services{
		AuthService: NewAuthValidationService(userValidator).
			Wrap(NewAuthService(storages.UserRepository, cfg, logger)),
		UserService: NewUserValidationService(userValidator).
			Wrap(NewUserService(storages.UserRepository, logger)),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}

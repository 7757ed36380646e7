package service

import (
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

type Services struct {
	AuthService  AuthService
	TokenService TokenService
	UserService  UserService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, logger),
		TokenService: NewTokenService(storages.RevocationStore, cfg.Auth, logger),
		UserService:  NewUserService(storages.UserRepository, cfg.Bootstrap, logger),
	}
}

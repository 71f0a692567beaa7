package service

import (
	"github.com/MKhiriev/go-crud-api/internal/config"
	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
	ItemService ItemService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		UserService: NewUserService(storages.UserRepository, storages.ItemRepository, logger),
		ItemService: NewItemService(storages.ItemRepository, storages.UserRepository, logger),
	}
}

package services

import (
	"context"

	"gorm.io/gorm"

	"lumina/internal/repositories"
)

// DbServices aggregates the services backed by the database.
type DbServices struct {
	AppSettings AppSettingsService
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB) *DbServices {
	return &DbServices{
		AppSettings: NewAppSettingsService(repositories.NewAppSettingsRepository(db)),
	}
}

func (s *DbServices) StartDbServices(ctx context.Context) {
	s.AppSettings.Startup(ctx)
}

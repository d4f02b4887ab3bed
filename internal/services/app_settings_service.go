package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"lumina/internal/models"
	"lumina/internal/repositories"
)

type AppSettingsService interface {
	Startup(ctx context.Context)
	Get() (*models.AppSettings, error)
	Update(theme, locale, model string) (*models.AppSettings, error)
}

type appSettingsService struct {
	appSettings repositories.AppSettingsRepository
	ctx         context.Context
}

func NewAppSettingsService(appSettings repositories.AppSettingsRepository) AppSettingsService {
	return &appSettingsService{appSettings: appSettings, ctx: context.Background()}
}

func (s *appSettingsService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *appSettingsService) Get() (*models.AppSettings, error) {
	return s.appSettings.Get(s.ctx)
}

// Update replaces theme and locale and, when non-empty, the preferred
// generation model.
func (s *appSettingsService) Update(theme, locale, model string) (*models.AppSettings, error) {
	if theme != "light" && theme != "dark" && theme != "system" {
		return nil, errors.New("theme must be 'light', 'dark', or 'system'")
	}
	if locale == "" {
		return nil, errors.New("locale is required")
	}

	current, err := s.appSettings.Get(s.ctx)
	if err != nil {
		return nil, err
	}

	current.Theme = theme
	current.Locale = locale
	if m := strings.TrimSpace(model); m != "" {
		current.Model = m
	}
	current.UpdatedAt = time.Now()

	if err := s.appSettings.Update(s.ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}

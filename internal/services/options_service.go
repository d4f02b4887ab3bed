package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"lumina/internal/assets"
)

// OptionCatalog is the fixed set of selectable form options the frontend
// renders. Enumerated preference fields take their values from here, so
// membership is enforced by construction.
type OptionCatalog struct {
	ImageTypes   []string `json:"imageTypes"`
	StylePresets []string `json:"stylePresets"`
	AspectRatios []string `json:"aspectRatios"`
}

type OptionsService interface {
	Startup(ctx context.Context)
	Catalog() OptionCatalog
	HasImageType(v string) bool
	HasStylePreset(v string) bool
	HasAspectRatio(v string) bool
}

type optionsService struct {
	ctx     context.Context
	catalog OptionCatalog
}

// NewOptionsService parses the embedded catalog once.
func NewOptionsService() (OptionsService, error) {
	var catalog OptionCatalog
	if err := json.Unmarshal(assets.OptionsData, &catalog); err != nil {
		return nil, fmt.Errorf("parse options catalog: %w", err)
	}
	return &optionsService{catalog: catalog, ctx: context.Background()}, nil
}

func (s *optionsService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *optionsService) Catalog() OptionCatalog {
	return s.catalog
}

func (s *optionsService) HasImageType(v string) bool {
	return slices.Contains(s.catalog.ImageTypes, v)
}

func (s *optionsService) HasStylePreset(v string) bool {
	return slices.Contains(s.catalog.StylePresets, v)
}

func (s *optionsService) HasAspectRatio(v string) bool {
	return slices.Contains(s.catalog.AspectRatios, v)
}

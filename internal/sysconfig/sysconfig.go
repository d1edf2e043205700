// Package sysconfig stores key-value configuration records such as the set
// of dish categories ("dish_categories") or event-reason labels
// ("event_reasons"), keyed by a fixed id convention.
package sysconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mobilebanquet/banquet-service/internal/apperr"
	"github.com/mobilebanquet/banquet-service/internal/docstore"
)

// Collection is the docstore collection config records live in.
const Collection = "system_config"

type SystemConfig struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type Service interface {
	Get(ctx context.Context, id string) (*SystemConfig, error)
	List(ctx context.Context) ([]SystemConfig, error)
	Save(ctx context.Context, cfg *SystemConfig) (*SystemConfig, error)
}

type service struct {
	store docstore.Store
}

func NewService(store docstore.Store) Service {
	return &service{store: store}
}

// Get returns the record under id, or an empty default when absent. An
// unknown config id is not an error: clients render the default and save
// over it.
func (s *service) Get(ctx context.Context, id string) (*SystemConfig, error) {
	var cfg SystemConfig
	if err := s.store.Get(ctx, Collection, id, &cfg); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return &SystemConfig{ID: id, Label: "Unknown", Values: []string{}}, nil
		}
		log.Error().Err(err).Str("config_id", id).Msg("service: failed to fetch config")
		return nil, fmt.Errorf("service: failed to fetch config %s: %w", id, err)
	}
	if cfg.Values == nil {
		cfg.Values = []string{}
	}
	return &cfg, nil
}

func (s *service) List(ctx context.Context) ([]SystemConfig, error) {
	configs := make([]SystemConfig, 0)
	if err := s.store.List(ctx, Collection, &configs); err != nil {
		log.Error().Err(err).Msg("service: failed to list configs")
		return nil, fmt.Errorf("service: failed to list configs: %w", err)
	}
	return configs, nil
}

// Save upserts the record under its own id.
func (s *service) Save(ctx context.Context, cfg *SystemConfig) (*SystemConfig, error) {
	if cfg.ID == "" {
		return nil, apperr.Validation("id", "is required")
	}
	if cfg.Values == nil {
		cfg.Values = []string{}
	}
	if err := s.store.Set(ctx, Collection, cfg.ID, cfg); err != nil {
		log.Error().Err(err).Str("config_id", cfg.ID).Msg("service: failed to store config")
		return nil, fmt.Errorf("service: failed to save config %s: %w", cfg.ID, err)
	}
	log.Info().Str("config_id", cfg.ID).Msg("service: config saved")
	return cfg, nil
}

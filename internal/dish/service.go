package dish

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mobilebanquet/banquet-service/internal/apperr"
	"github.com/mobilebanquet/banquet-service/internal/docstore"
)

var ErrNotFound = errors.New("dish not found")

type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Dish, error)
	GetByID(ctx context.Context, id string) (*Dish, error)
	List(ctx context.Context) ([]Dish, error)
	Replace(ctx context.Context, id string, d *Dish) (*Dish, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store docstore.Store
}

func NewService(store docstore.Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, req *CreateRequest) (*Dish, error) {
	if req.Price < 0 {
		return nil, apperr.Validation("price", "must be non-negative, got %v", req.Price)
	}

	d := &Dish{
		ID:          s.store.NewID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
	}

	if err := s.store.Set(ctx, Collection, d.ID, d); err != nil {
		log.Error().Err(err).Str("dish_id", d.ID).Msg("service: failed to store new dish")
		return nil, fmt.Errorf("service: failed to create dish: %w", err)
	}

	log.Info().Str("dish_id", d.ID).Str("name", d.Name).Msg("service: dish created")
	return d, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Dish, error) {
	var d Dish
	if err := s.store.Get(ctx, Collection, id, &d); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("dish_id", id).Msg("service: failed to fetch dish")
		return nil, fmt.Errorf("service: failed to fetch dish %s: %w", id, err)
	}
	return &d, nil
}

func (s *service) List(ctx context.Context) ([]Dish, error) {
	dishes := make([]Dish, 0)
	if err := s.store.List(ctx, Collection, &dishes); err != nil {
		log.Error().Err(err).Msg("service: failed to list dishes")
		return nil, fmt.Errorf("service: failed to list dishes: %w", err)
	}
	return dishes, nil
}

func (s *service) Replace(ctx context.Context, id string, d *Dish) (*Dish, error) {
	var existing Dish
	if err := s.store.Get(ctx, Collection, id, &existing); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("dish_id", id).Msg("service: failed to fetch dish for replace")
		return nil, fmt.Errorf("service: failed to fetch dish %s: %w", id, err)
	}

	if d.Price < 0 {
		return nil, apperr.Validation("price", "must be non-negative, got %v", d.Price)
	}
	d.ID = id

	if err := s.store.Set(ctx, Collection, id, d); err != nil {
		log.Error().Err(err).Str("dish_id", id).Msg("service: failed to store replaced dish")
		return nil, fmt.Errorf("service: failed to replace dish %s: %w", id, err)
	}
	return d, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, Collection, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Str("dish_id", id).Msg("service: failed to delete dish")
		return fmt.Errorf("service: failed to delete dish %s: %w", id, err)
	}
	log.Info().Str("dish_id", id).Msg("service: dish deleted")
	return nil
}
